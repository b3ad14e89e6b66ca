package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"rdsq/internal/config"
	"rdsq/internal/domain"
	"rdsq/internal/service/query"
	"rdsq/internal/testutil"
)

// testApp wires an app to in-memory collaborators and records the
// settings each query run resolved to.
type testApp struct {
	*app
	env      map[string]string
	configs  []*config.Config
	clusters *testutil.MockClusterLister
	secrets  *testutil.MockSecretLister
	exec     *testutil.MockStatementExecutor
}

// newTestApp isolates HOME so no real config is loaded, and returns an app
// whose service is backed by the given mocks.
func newTestApp(t *testing.T, clusters *testutil.MockClusterLister, secrets *testutil.MockSecretLister, exec *testutil.MockStatementExecutor) *testApp {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	ta := &testApp{
		env:      map[string]string{},
		clusters: clusters,
		secrets:  secrets,
		exec:     exec,
	}
	ta.app = &app{
		lookupEnv: func(key string) (string, bool) {
			v, ok := ta.env[key]
			return v, ok
		},
		stdin:           strings.NewReader(""),
		stdinIsTerminal: func() bool { return true },
	}
	ta.newService = func(_ context.Context, cfg *config.Config, logger *slog.Logger) (*query.Service, error) {
		ta.configs = append(ta.configs, cfg)
		return query.NewService(ta.clusters, ta.secrets, ta.exec, logger), nil
	}
	return ta
}

// lastConfig returns the settings of the most recent query run.
func (ta *testApp) lastConfig() *config.Config {
	if len(ta.configs) == 0 {
		return nil
	}
	return ta.configs[len(ta.configs)-1]
}

// run executes the command tree with args and returns stdout, stderr and the error.
func (ta *testApp) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(ta.app)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var (
	prodCluster = domain.ClusterDescriptor{Identifier: "prod", ResourceID: "res-1", ARN: "arn:aws:rds:us-east-1:1:cluster:prod"}
	devCluster  = domain.ClusterDescriptor{Identifier: "dev", ResourceID: "res-2", ARN: "arn:aws:rds:us-east-1:1:cluster:dev"}

	aliceSecret = domain.SecretDescriptor{Name: "rds-db-credentials/res-1/alice", ARN: "arn:secret:alice"}
	bobSecret   = domain.SecretDescriptor{Name: "rds-db-credentials/res-1/bob", ARN: "arn:secret:bob"}
	carolSecret = domain.SecretDescriptor{Name: "rds-db-credentials/res-2/carol", ARN: "arn:secret:carol"}
)

func oneRow() *domain.ResultSet {
	return &domain.ResultSet{
		Columns: []domain.Column{{Name: "id"}, {Name: "name"}},
		Rows:    [][]domain.Field{{domain.LongField(1), domain.StringField("Ann")}},
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
