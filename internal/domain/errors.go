// Package domain defines the core types, collaborator ports, and errors for rdsq.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrClusterLookupEmpty indicates the cluster listing response carried no cluster field at all.
	ErrClusterLookupEmpty = errors.New("failed to find any RDS databases")
	// ErrNoClusters indicates the cluster listing was present but empty.
	ErrNoClusters = errors.New("no DB clusters found")
	// ErrSecretLookupEmpty indicates the secret listing response carried no secret field at all.
	ErrSecretLookupEmpty = errors.New("failed to find any secrets")
	// ErrNoSecrets indicates no credential secret belongs to the chosen cluster.
	ErrNoSecrets = errors.New("no DB user secrets found")
)

// ClusterLookupError wraps a failure of the cluster listing request.
type ClusterLookupError struct {
	Err error
}

func (e *ClusterLookupError) Error() string { return fmt.Sprintf("failed to lookup clusters: %v", e.Err) }

func (e *ClusterLookupError) Unwrap() error { return e.Err }

// ClusterNotFoundError indicates an explicitly requested cluster identifier matched nothing.
type ClusterNotFoundError struct {
	Requested string
	Available []string
}

func (e *ClusterNotFoundError) Error() string {
	return fmt.Sprintf("no DB cluster matched %q, available ids are %s", e.Requested, quoteList(e.Available))
}

// ClusterAmbiguousError indicates several clusters exist and none was requested.
type ClusterAmbiguousError struct {
	Available []string
}

func (e *ClusterAmbiguousError) Error() string {
	return fmt.Sprintf("multiple DB clusters found, please specify one of %s", quoteList(e.Available))
}

// SecretLookupError wraps a failure of the secret listing request.
type SecretLookupError struct {
	Err error
}

func (e *SecretLookupError) Error() string { return fmt.Sprintf("failed to lookup secrets: %v", e.Err) }

func (e *SecretLookupError) Unwrap() error { return e.Err }

// NoSecretsForClusterError indicates the secret listing holds no credentials for the cluster.
type NoSecretsForClusterError struct {
	ResourceID string
}

func (e *NoSecretsForClusterError) Error() string {
	return fmt.Sprintf("%v for cluster resource %q", ErrNoSecrets, e.ResourceID)
}

func (e *NoSecretsForClusterError) Is(target error) bool { return target == ErrNoSecrets }

// SecretNotFoundError indicates an explicitly requested user matched none of the cluster's secrets.
type SecretNotFoundError struct {
	RequestedUser string
	Available     []string
}

func (e *SecretNotFoundError) Error() string {
	return fmt.Sprintf("no DB user matched %q, available users are %s", e.RequestedUser, quoteList(e.Available))
}

// SecretAmbiguousError indicates several users exist for the cluster and none was requested.
type SecretAmbiguousError struct {
	Available []string
}

func (e *SecretAmbiguousError) Error() string {
	return fmt.Sprintf("multiple DB users found, please specify one of %s", quoteList(e.Available))
}

// StatementError indicates the statement execution request failed.
type StatementError struct {
	Code    string // remote error code, empty for transport failures
	Message string
	Err     error
}

func (e *StatementError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("failed to execute statement: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("failed to execute statement: %v", e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// OutputError indicates the result could not be written in the selected format.
type OutputError struct {
	Format string
	Err    error
}

func (e *OutputError) Error() string { return fmt.Sprintf("write %s output: %v", e.Format, e.Err) }

func (e *OutputError) Unwrap() error { return e.Err }

// ErrStatement creates a StatementError with a formatted message and no remote code.
func ErrStatement(err error, format string, args ...interface{}) *StatementError {
	return &StatementError{Message: fmt.Sprintf(format, args...), Err: err}
}

func quoteList(items []string) string {
	return fmt.Sprintf("%q", items)
}

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
