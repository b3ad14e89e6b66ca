package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rdsq/internal/config"
	"rdsq/internal/domain"
	"rdsq/internal/output"
	"rdsq/internal/service/query"
)

func (a *app) runQuery(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := a.resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	a.format = format

	sql, err := a.readSQL(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	svc, err := a.newService(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	req := query.Request{
		Cluster:  cfg.ClusterHint(),
		User:     cfg.UserHint(),
		Database: cfg.Database,
		SQL:      sql,
	}
	return svc.Run(cmd.Context(), req, cmd.OutOrStdout(), format)
}

// resolveConfig applies flag > env > profile > default precedence.
func (a *app) resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	lookup := a.lookupEnv
	if f.envFile != "" {
		dotenv, err := config.ReadDotEnv(f.envFile)
		if err != nil {
			return nil, err
		}
		lookup = config.Chain(a.lookupEnv, dotenv.Lookup)
	}

	ucfg, err := loadUserConfigOrEmpty()
	if err != nil {
		return nil, err
	}
	profileName := f.profile
	if !cmd.Flags().Changed("profile") {
		if v, ok := lookup(config.EnvProfile); ok {
			profileName = v
		}
	}
	p, err := ucfg.ActiveProfile(profileName)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	cfg := &config.Config{
		AWSProfile:      pick(fs, "aws-profile", f.awsProfile, lookup, config.EnvAWSProfile, p.AWSProfile, ""),
		Region:          pick(fs, "aws-region", f.region, lookup, config.EnvRegion, p.Region, config.DefaultRegion),
		Cluster:         pick(fs, "db-cluster-identifier", f.cluster, lookup, config.EnvCluster, p.Cluster, ""),
		User:            pick(fs, "db-user-identifier", f.user, lookup, config.EnvUser, p.User, ""),
		Database:        pick(fs, "database", f.database, lookup, config.EnvDatabase, p.Database, ""),
		Format:          pick(fs, "format", f.format, lookup, config.EnvFormat, p.Format, config.DefaultFormat),
		EndpointURL:     pick(fs, "endpoint-url", f.endpointURL, lookup, config.EnvEndpointURL, p.EndpointURL, ""),
		AccessKeyID:     p.AccessKeyID,
		SecretAccessKey: p.SecretAccessKey,
		LogLevel:        pick(fs, "log-level", f.logLevel, lookup, config.EnvLogLevel, "", ""),
		Verbosity:       f.verbose,
	}
	return cfg, nil
}

// pick returns the first of: the flag value when set on the command line, the
// environment value, the profile value, the default.
func pick(fs *pflag.FlagSet, name, flagVal string, lookup config.Lookup, envKey, profileVal, def string) string {
	if fs.Changed(name) {
		return flagVal
	}
	if v, ok := lookup(envKey); ok && v != "" {
		return v
	}
	if profileVal != "" {
		return profileVal
	}
	return def
}

// readSQL takes the statement from the argument, or from stdin when it is piped.
func (a *app) readSQL(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.stdin != nil && !a.stdinIsTerminal() {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if sql := strings.TrimSpace(string(data)); sql != "" {
			return sql, nil
		}
	}
	return "", domain.ErrValidation("provide SQL as an argument or via stdin pipe")
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler).With("invocation", domain.NewInvocationID())
}
