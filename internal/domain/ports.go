package domain

import "context"

// ClusterLister fetches the cluster listing.
// Implemented by awsapi.ClusterClient.
type ClusterLister interface {
	ListClusters(ctx context.Context) (ClusterListing, error)
}

// SecretLister fetches the secret listing.
// Implemented by awsapi.SecretClient.
type SecretLister interface {
	ListSecrets(ctx context.Context) (SecretListing, error)
}

// StatementExecutor runs one SQL statement through the data API.
// Implemented by awsapi.DataClient. Failures are returned as *StatementError.
type StatementExecutor interface {
	ExecuteStatement(ctx context.Context, req ExecuteRequest) (*ResultSet, error)
}

// ResolvedIdentity is the pair of ARNs chosen by resolution.
type ResolvedIdentity struct {
	SecretARN   string
	ResourceARN string
}

// ExecuteRequest is the input to StatementExecutor.
// Decimal results are always requested as strings and result metadata is always included.
type ExecuteRequest struct {
	Identity ResolvedIdentity
	SQL      string
	Database string // empty means the cluster default
}
