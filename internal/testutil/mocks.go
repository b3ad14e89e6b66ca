// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase. This follows the Go convention of a
// shared test utility package (like net/http/httptest).
package testutil

import (
	"context"
	"sync"

	"rdsq/internal/domain"
)

// === Cluster Lister Mock ===

// MockClusterLister implements domain.ClusterLister for testing.
type MockClusterLister struct {
	ListClustersFn func(ctx context.Context) (domain.ClusterListing, error)

	mu    sync.Mutex
	Calls int
}

// ListClusters implements the interface method for testing.
func (m *MockClusterLister) ListClusters(ctx context.Context) (domain.ClusterListing, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ListClustersFn != nil {
		return m.ListClustersFn(ctx)
	}
	panic("unexpected call to MockClusterLister.ListClusters")
}

var _ domain.ClusterLister = (*MockClusterLister)(nil)

// === Secret Lister Mock ===

// MockSecretLister implements domain.SecretLister for testing.
type MockSecretLister struct {
	ListSecretsFn func(ctx context.Context) (domain.SecretListing, error)

	mu    sync.Mutex
	Calls int
}

// ListSecrets implements the interface method for testing.
func (m *MockSecretLister) ListSecrets(ctx context.Context) (domain.SecretListing, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ListSecretsFn != nil {
		return m.ListSecretsFn(ctx)
	}
	panic("unexpected call to MockSecretLister.ListSecrets")
}

var _ domain.SecretLister = (*MockSecretLister)(nil)

// === Statement Executor Mock ===

// MockStatementExecutor implements domain.StatementExecutor for testing.
type MockStatementExecutor struct {
	ExecuteStatementFn func(ctx context.Context, req domain.ExecuteRequest) (*domain.ResultSet, error)
	Requests           []domain.ExecuteRequest // collected requests for assertions
}

// ExecuteStatement implements the interface method for testing.
func (m *MockStatementExecutor) ExecuteStatement(ctx context.Context, req domain.ExecuteRequest) (*domain.ResultSet, error) {
	m.Requests = append(m.Requests, req)
	if m.ExecuteStatementFn != nil {
		return m.ExecuteStatementFn(ctx, req)
	}
	panic("unexpected call to MockStatementExecutor.ExecuteStatement")
}

// LastRequest returns the last collected request, or nil if none.
func (m *MockStatementExecutor) LastRequest() *domain.ExecuteRequest {
	if len(m.Requests) == 0 {
		return nil
	}
	return &m.Requests[len(m.Requests)-1]
}

var _ domain.StatementExecutor = (*MockStatementExecutor)(nil)

// === Fixtures ===

// Clusters returns a listing mock that always yields the given clusters.
func Clusters(clusters ...domain.ClusterDescriptor) *MockClusterLister {
	return &MockClusterLister{
		ListClustersFn: func(context.Context) (domain.ClusterListing, error) {
			return domain.ClusterListing{Clusters: clusters}, nil
		},
	}
}

// Secrets returns a listing mock that always yields the given secrets.
func Secrets(secrets ...domain.SecretDescriptor) *MockSecretLister {
	return &MockSecretLister{
		ListSecretsFn: func(context.Context) (domain.SecretListing, error) {
			return domain.SecretListing{Secrets: secrets}, nil
		},
	}
}

// Returning returns an executor mock that always yields rs.
func Returning(rs *domain.ResultSet) *MockStatementExecutor {
	return &MockStatementExecutor{
		ExecuteStatementFn: func(context.Context, domain.ExecuteRequest) (*domain.ResultSet, error) {
			return rs, nil
		},
	}
}
