// Package resolve turns optional user hints plus listing snapshots into exactly
// one cluster and one credential secret, or an error naming the alternatives.
package resolve

import (
	"rdsq/internal/domain"
)

// Cluster selects one cluster from the listing.
//
// With a requested identifier the first exact, case-sensitive match wins.
// Without one, the listing must hold exactly one cluster.
func Cluster(requested *string, listing domain.ClusterListing) (domain.ClusterDescriptor, error) {
	if listing.Missing {
		return domain.ClusterDescriptor{}, domain.ErrClusterLookupEmpty
	}

	clusters := listing.Clusters
	if requested != nil {
		for _, c := range clusters {
			if c.Identifier == *requested {
				return c, nil
			}
		}
		if len(clusters) == 0 {
			return domain.ClusterDescriptor{}, domain.ErrNoClusters
		}
		return domain.ClusterDescriptor{}, &domain.ClusterNotFoundError{
			Requested: *requested,
			Available: listing.Identifiers(),
		}
	}

	switch len(clusters) {
	case 0:
		return domain.ClusterDescriptor{}, domain.ErrNoClusters
	case 1:
		return clusters[0], nil
	default:
		return domain.ClusterDescriptor{}, &domain.ClusterAmbiguousError{Available: listing.Identifiers()}
	}
}
