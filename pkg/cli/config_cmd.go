package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rdsq/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rdsq configuration profiles",
	}

	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigSetProfileCmd(a))
	cmd.AddCommand(newConfigUseProfileCmd(a))

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No configuration found at %s\n", ConfigPath())
				return err
			}
			if !reveal {
				cfg = maskConfig(cfg)
			}
			if a.wantsJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show sensitive values unmasked")

	return cmd
}

// maskConfig returns a copy of the config with credentials masked.
func maskConfig(cfg *UserConfig) *UserConfig {
	masked := &UserConfig{
		CurrentProfile: cfg.CurrentProfile,
		Profiles:       make(map[string]Profile, len(cfg.Profiles)),
	}
	for name, p := range cfg.Profiles {
		p.AccessKeyID = maskSecret(p.AccessKeyID)
		p.SecretAccessKey = maskSecret(p.SecretAccessKey)
		masked.Profiles[name] = p
	}
	return masked
}

// maskSecret masks a sensitive string, showing first 4 and last 4 chars.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 10 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

func newConfigSetProfileCmd(a *app) *cobra.Command {
	var (
		name    string
		updated Profile
	)

	cmd := &cobra.Command{
		Use:   "set-profile",
		Short: "Create or update a configuration profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			fl := cmd.Flags()
			if fl.Changed("default-format") {
				if _, err := output.ParseFormat(updated.Format); err != nil {
					return err
				}
			}

			cfg, err := loadUserConfigOrEmpty()
			if err != nil {
				return err
			}

			p := cfg.Profiles[name]
			set := func(flag string, dst *string, v string) {
				if fl.Changed(flag) {
					*dst = v
				}
			}
			set("aws-profile", &p.AWSProfile, updated.AWSProfile)
			set("region", &p.Region, updated.Region)
			set("cluster", &p.Cluster, updated.Cluster)
			set("user", &p.User, updated.User)
			set("database", &p.Database, updated.Database)
			set("default-format", &p.Format, updated.Format)
			set("endpoint-url", &p.EndpointURL, updated.EndpointURL)
			set("access-key-id", &p.AccessKeyID, updated.AccessKeyID)
			set("secret-access-key", &p.SecretAccessKey, updated.SecretAccessKey)
			cfg.Profiles[name] = p

			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if a.wantsJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"status":  "ok",
					"profile": name,
					"path":    ConfigPath(),
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved to %s\n", name, ConfigPath())
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&name, "name", "", "Profile name (required)")
	fl.StringVar(&updated.AWSProfile, "aws-profile", "", "AWS profile name")
	fl.StringVar(&updated.Region, "region", "", "AWS region")
	fl.StringVar(&updated.Cluster, "cluster", "", "Default RDS cluster identifier")
	fl.StringVar(&updated.User, "user", "", "Default RDS user identifier")
	fl.StringVar(&updated.Database, "database", "", "Default database name")
	fl.StringVar(&updated.Format, "default-format", "", "Default output format")
	fl.StringVar(&updated.EndpointURL, "endpoint-url", "", "AWS endpoint URL override")
	fl.StringVar(&updated.AccessKeyID, "access-key-id", "", "Static AWS access key id")
	fl.StringVar(&updated.SecretAccessKey, "secret-access-key", "", "Static AWS secret access key")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newConfigUseProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Set the active configuration profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadUserConfig()
			if err != nil {
				return fmt.Errorf("no config found: %w", err)
			}
			name := args[0]
			if _, ok := cfg.Profiles[name]; !ok {
				return fmt.Errorf("profile %q not found", name)
			}
			cfg.CurrentProfile = name
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			if a.wantsJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"status":         "ok",
					"active_profile": name,
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active profile set to %q\n", name)
			return nil
		},
	}
}
