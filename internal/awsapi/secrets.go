package awsapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"rdsq/internal/domain"
)

var _ domain.SecretLister = (*SecretClient)(nil)

// SecretClient lists secrets through ListSecrets.
type SecretClient struct {
	api    secretsmanager.ListSecretsAPIClient
	logger *slog.Logger
}

// NewSecretClient wraps a Secrets Manager client.
func NewSecretClient(api secretsmanager.ListSecretsAPIClient, logger *slog.Logger) *SecretClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &SecretClient{api: api, logger: logger}
}

// ListSecrets drains every page of ListSecrets into one snapshot. Only names and
// ARNs are read; secret values are never fetched.
func (c *SecretClient) ListSecrets(ctx context.Context) (domain.SecretListing, error) {
	input := &secretsmanager.ListSecretsInput{}
	c.logger.Info("list secrets")

	listing := domain.SecretListing{Missing: true}
	pages := secretsmanager.NewListSecretsPaginator(c.api, input)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return domain.SecretListing{}, fmt.Errorf("list secrets: %w", err)
		}
		if out.SecretList == nil {
			continue
		}
		listing.Missing = false
		for _, s := range out.SecretList {
			listing.Secrets = append(listing.Secrets, domain.SecretDescriptor{
				Name: aws.ToString(s.Name),
				ARN:  aws.ToString(s.ARN),
			})
		}
	}

	c.logger.Debug("secrets listed", "count", len(listing.Secrets), "missing", listing.Missing)
	return listing, nil
}
