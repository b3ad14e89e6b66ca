// Package query runs one SQL statement end to end: it lists clusters and secrets,
// resolves the pair of ARNs, executes the statement and renders the result.
package query

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"rdsq/internal/domain"
	"rdsq/internal/output"
	"rdsq/internal/resolve"
)

// Request describes one invocation. Nil Cluster or User means "pick the only one".
type Request struct {
	Cluster  *string
	User     *string
	Database string
	SQL      string
}

// Service wires the three remote collaborators together.
type Service struct {
	clusters domain.ClusterLister
	secrets  domain.SecretLister
	exec     domain.StatementExecutor
	logger   *slog.Logger
}

// NewService creates a Service. A nil logger uses slog.Default().
func NewService(clusters domain.ClusterLister, secrets domain.SecretLister, exec domain.StatementExecutor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{clusters: clusters, secrets: secrets, exec: exec, logger: logger}
}

// Resolve fetches both listings concurrently, then picks the cluster and the
// secret in that order. Either listing failure aborts before any selection.
func (s *Service) Resolve(ctx context.Context, cluster, user *string) (domain.ResolvedIdentity, error) {
	var (
		clusterListing domain.ClusterListing
		secretListing  domain.SecretListing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.clusters.ListClusters(gctx)
		if err != nil {
			return &domain.ClusterLookupError{Err: err}
		}
		clusterListing = l
		return nil
	})
	g.Go(func() error {
		l, err := s.secrets.ListSecrets(gctx)
		if err != nil {
			return &domain.SecretLookupError{Err: err}
		}
		secretListing = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ResolvedIdentity{}, err
	}

	c, err := resolve.Cluster(cluster, clusterListing)
	if err != nil {
		return domain.ResolvedIdentity{}, err
	}
	s.logger.Info("cluster resolved", "identifier", c.Identifier, "resource_id", c.ResourceID)

	sec, err := resolve.Secret(c.ResourceID, user, secretListing)
	if err != nil {
		return domain.ResolvedIdentity{}, err
	}
	s.logger.Info("secret resolved", "user", sec.UserID())

	return domain.ResolvedIdentity{SecretARN: sec.ARN, ResourceARN: c.ARN}, nil
}

// Execute resolves the target and runs the statement.
func (s *Service) Execute(ctx context.Context, req Request) (*domain.ResultSet, error) {
	if strings.TrimSpace(req.SQL) == "" {
		return nil, domain.ErrValidation("sql query is required")
	}

	identity, err := s.Resolve(ctx, req.Cluster, req.User)
	if err != nil {
		return nil, err
	}

	return s.exec.ExecuteStatement(ctx, domain.ExecuteRequest{
		Identity: identity,
		SQL:      req.SQL,
		Database: req.Database,
	})
}

// Run executes the statement and writes the result to w in format f.
func (s *Service) Run(ctx context.Context, req Request, w io.Writer, f output.Format) error {
	rs, err := s.Execute(ctx, req)
	if err != nil {
		return err
	}
	return output.Write(w, f, rs)
}
