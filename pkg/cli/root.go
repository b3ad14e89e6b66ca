// Package cli implements the rdsq command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rdsq/internal/awsapi"
	"rdsq/internal/config"
	"rdsq/internal/domain"
	"rdsq/internal/output"
	"rdsq/internal/service/query"
)

var (
	version = "dev"
	commit  = "none"
)

// serviceFactory builds the query service for resolved settings.
type serviceFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*query.Service, error)

// app carries the process-level collaborators so tests can replace them.
type app struct {
	newService      serviceFactory
	lookupEnv       config.Lookup
	stdin           io.Reader
	stdinIsTerminal func() bool

	// format is the resolved output format, used to shape error output.
	format output.Format
	// flags holds the root command's raw flag values once the tree is built.
	flags *rootFlags
}

func newApp() *app {
	return &app{
		newService:      newAWSService,
		lookupEnv:       os.LookupEnv,
		stdin:           os.Stdin,
		stdinIsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Execute runs the CLI.
func Execute() int {
	a := newApp()
	rootCmd := newRootCmd(a)
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stdout, os.Stderr, a.format, err)
		return 1
	}
	return 0
}

// printError writes err as JSON to stdout for JSON formats, otherwise as text to stderr.
func printError(stdout, stderr io.Writer, format output.Format, err error) {
	if !format.IsJSON() {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}

	errObj := map[string]interface{}{
		"error": err.Error(),
	}
	var (
		clusterAmb *domain.ClusterAmbiguousError
		clusterNF  *domain.ClusterNotFoundError
		secretAmb  *domain.SecretAmbiguousError
		secretNF   *domain.SecretNotFoundError
		stmtErr    *domain.StatementError
	)
	switch {
	case errors.As(err, &clusterAmb):
		errObj["candidates"] = clusterAmb.Available
	case errors.As(err, &clusterNF):
		errObj["candidates"] = clusterNF.Available
	case errors.As(err, &secretAmb):
		errObj["candidates"] = secretAmb.Available
	case errors.As(err, &secretNF):
		errObj["candidates"] = secretNF.Available
	case errors.As(err, &stmtErr) && stmtErr.Code != "":
		errObj["code"] = stmtErr.Code
	}
	_ = printJSON(stdout, errObj)
}

// rootFlags holds the raw flag values before precedence is applied.
type rootFlags struct {
	awsProfile  string
	region      string
	cluster     string
	user        string
	database    string
	endpointURL string
	format      string
	profile     string
	logLevel    string
	envFile     string
	verbose     int
}

func newRootCmd(a *app) *cobra.Command {
	var f rootFlags
	a.flags = &f

	rootCmd := &cobra.Command{
		Use:   "rdsq [flags] [SQL]",
		Short: "Query an Amazon RDS database through the Data API",
		Long: `rdsq runs one SQL statement against an Aurora cluster through the RDS Data API.

The cluster and the credential secret are discovered by listing the account's
DB clusters and Secrets Manager secrets. When more than one candidate exists,
name the one to use with --db-cluster-identifier and --db-user-identifier.
The statement is read from stdin when no argument is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if format, err := output.ParseFormat(f.format); err == nil {
				a.format = format
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd, &f, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.format, "format", "f", config.DefaultFormat, "Output format (csv, cooked, raw, table)")
	pf.StringVar(&f.profile, "profile", "", "rdsq config profile to use")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides -v")
	pf.CountVarP(&f.verbose, "verbose", "v", "Increase logging verbosity (-v, -vv)")
	pf.StringVar(&f.envFile, "env-file", "", "Read default settings from a .env file")

	fl := rootCmd.Flags()
	fl.StringVarP(&f.awsProfile, "aws-profile", "p", "", "AWS profile to use, as named in ~/.aws/config")
	fl.StringVarP(&f.region, "aws-region", "r", config.DefaultRegion, "AWS region to target")
	fl.StringVarP(&f.cluster, "db-cluster-identifier", "c", "", "RDS cluster identifier")
	fl.StringVarP(&f.user, "db-user-identifier", "u", "", "RDS user identifier (the user segment of the credential secret name)")
	fl.StringVarP(&f.database, "database", "d", "", "Database name")
	fl.StringVar(&f.endpointURL, "endpoint-url", "", "Override the AWS service endpoint URL")

	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}

// newAWSService builds the query service on top of the AWS SDK clients.
func newAWSService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*query.Service, error) {
	settings := awsapi.Settings{
		Profile:         cfg.AWSProfile,
		Region:          cfg.Region,
		EndpointURL:     cfg.EndpointURL,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
	}
	awsCfg, err := awsapi.LoadConfig(ctx, settings)
	if err != nil {
		return nil, err
	}
	clients := awsapi.NewClients(awsCfg, settings, logger)
	return query.NewService(clients.Clusters, clients.Secrets, clients.Data, logger), nil
}
