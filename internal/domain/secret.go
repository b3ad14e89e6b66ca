package domain

import "strings"

// SecretNamePrefix is the leading segment of credential secrets created for RDS clusters.
const SecretNamePrefix = "rds-db-credentials/"

// SecretDescriptor is one entry of the secret listing.
type SecretDescriptor struct {
	Name string // rds-db-credentials/<cluster-resource-id>/<user-id>
	ARN  string
}

// UserID returns the third slash-delimited segment of the secret name,
// or the empty string when the name has fewer segments.
func (s SecretDescriptor) UserID() string {
	parts := strings.SplitN(s.Name, "/", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// SecretListing is a snapshot of the secret listing taken once per invocation.
type SecretListing struct {
	Secrets []SecretDescriptor
	// Missing is set when the response carried no secret field at all.
	Missing bool
}
