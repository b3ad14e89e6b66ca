package awsapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"rdsq/internal/domain"
)

var _ domain.ClusterLister = (*ClusterClient)(nil)

// ClusterClient lists DB clusters through DescribeDBClusters.
type ClusterClient struct {
	api    rds.DescribeDBClustersAPIClient
	logger *slog.Logger
}

// NewClusterClient wraps an RDS client.
func NewClusterClient(api rds.DescribeDBClustersAPIClient, logger *slog.Logger) *ClusterClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClusterClient{api: api, logger: logger}
}

// ListClusters drains every page of DescribeDBClusters into one snapshot.
// The listing is Missing only when no page carried the cluster field.
func (c *ClusterClient) ListClusters(ctx context.Context) (domain.ClusterListing, error) {
	input := &rds.DescribeDBClustersInput{}
	c.logger.Info("describe db clusters")

	listing := domain.ClusterListing{Missing: true}
	pages := rds.NewDescribeDBClustersPaginator(c.api, input)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return domain.ClusterListing{}, fmt.Errorf("describe db clusters: %w", err)
		}
		if out.DBClusters == nil {
			continue
		}
		listing.Missing = false
		for _, cl := range out.DBClusters {
			listing.Clusters = append(listing.Clusters, domain.ClusterDescriptor{
				Identifier: aws.ToString(cl.DBClusterIdentifier),
				ResourceID: aws.ToString(cl.DbClusterResourceId),
				ARN:        aws.ToString(cl.DBClusterArn),
			})
		}
	}

	c.logger.Debug("db clusters listed", "count", len(listing.Clusters), "missing", listing.Missing)
	return listing, nil
}
