package domain

// ClusterDescriptor is one entry of the cluster listing.
type ClusterDescriptor struct {
	Identifier string // unique within the account and region
	ResourceID string // stable across renames
	ARN        string
}

// ClusterListing is a snapshot of the cluster listing taken once per invocation.
type ClusterListing struct {
	Clusters []ClusterDescriptor
	// Missing is set when the response carried no cluster field at all,
	// as opposed to a present but empty list.
	Missing bool
}

// Identifiers returns the identifier of every cluster in listing order.
func (l ClusterListing) Identifiers() []string {
	ids := make([]string, len(l.Clusters))
	for i, c := range l.Clusters {
		ids[i] = c.Identifier
	}
	return ids
}
