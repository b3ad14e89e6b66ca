package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdsq/internal/domain"
)

func strPtr(s string) *string { return &s }

func clusters(ids ...string) domain.ClusterListing {
	l := domain.ClusterListing{Clusters: []domain.ClusterDescriptor{}}
	for _, id := range ids {
		l.Clusters = append(l.Clusters, domain.ClusterDescriptor{
			Identifier: id,
			ResourceID: "cluster-" + id,
			ARN:        "arn:aws:rds:us-east-1:123456789012:cluster:" + id,
		})
	}
	return l
}

func TestCluster_NoRequest(t *testing.T) {
	t.Run("single cluster is chosen", func(t *testing.T) {
		got, err := Cluster(nil, clusters("prod"))
		require.NoError(t, err)
		assert.Equal(t, "prod", got.Identifier)
		assert.Equal(t, "cluster-prod", got.ResourceID)
	})

	t.Run("empty listing", func(t *testing.T) {
		_, err := Cluster(nil, clusters())
		assert.ErrorIs(t, err, domain.ErrNoClusters)
	})

	t.Run("several clusters are ambiguous", func(t *testing.T) {
		_, err := Cluster(nil, clusters("b", "a", "c"))
		var amb *domain.ClusterAmbiguousError
		require.True(t, errors.As(err, &amb))
		assert.Equal(t, []string{"b", "a", "c"}, amb.Available)
		assert.EqualError(t, err, `multiple DB clusters found, please specify one of ["b" "a" "c"]`)
	})
}

func TestCluster_Requested(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		listing   domain.ClusterListing
		wantID    string
		wantAvail []string
		wantErr   error
	}{
		{
			name:      "exact match among several",
			requested: "staging",
			listing:   clusters("prod", "staging", "dev"),
			wantID:    "staging",
		},
		{
			name:      "match is case sensitive",
			requested: "Prod",
			listing:   clusters("prod", "dev"),
			wantAvail: []string{"prod", "dev"},
		},
		{
			name:      "prefix is not a match",
			requested: "pro",
			listing:   clusters("prod"),
			wantAvail: []string{"prod"},
		},
		{
			name:      "empty listing ignores request",
			requested: "prod",
			listing:   clusters(),
			wantErr:   domain.ErrNoClusters,
		},
		{
			name:      "first duplicate wins",
			requested: "dup",
			listing: domain.ClusterListing{Clusters: []domain.ClusterDescriptor{
				{Identifier: "dup", ResourceID: "first"},
				{Identifier: "dup", ResourceID: "second"},
			}},
			wantID: "dup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cluster(strPtr(tt.requested), tt.listing)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAvail != nil:
				var nf *domain.ClusterNotFoundError
				require.True(t, errors.As(err, &nf), "got %v", err)
				assert.Equal(t, tt.requested, nf.Requested)
				assert.Equal(t, tt.wantAvail, nf.Available)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.Identifier)
			}
		})
	}
}

func TestCluster_FirstDuplicateResourceID(t *testing.T) {
	listing := domain.ClusterListing{Clusters: []domain.ClusterDescriptor{
		{Identifier: "dup", ResourceID: "first"},
		{Identifier: "dup", ResourceID: "second"},
	}}
	got, err := Cluster(strPtr("dup"), listing)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ResourceID)
}

func TestCluster_MissingListing(t *testing.T) {
	_, err := Cluster(nil, domain.ClusterListing{Missing: true})
	assert.ErrorIs(t, err, domain.ErrClusterLookupEmpty)

	_, err = Cluster(strPtr("prod"), domain.ClusterListing{Missing: true})
	assert.ErrorIs(t, err, domain.ErrClusterLookupEmpty)
}

func TestCluster_BlankIdentifiersInDiagnostics(t *testing.T) {
	listing := domain.ClusterListing{Clusters: []domain.ClusterDescriptor{
		{ResourceID: "no-identifier"},
		{Identifier: "named"},
	}}
	_, err := Cluster(nil, listing)
	var amb *domain.ClusterAmbiguousError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, []string{"", "named"}, amb.Available)
}
