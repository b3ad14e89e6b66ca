// Package awsapi adapts the AWS SDK clients for RDS, Secrets Manager and the
// RDS Data API to the domain ports.
package awsapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Settings selects the account, region and endpoint used for every remote call.
type Settings struct {
	Profile         string // shared config profile; empty uses the SDK default chain
	Region          string
	EndpointURL     string // overrides the service endpoints when set
	AccessKeyID     string // static credentials, used only when both keys are set
	SecretAccessKey string
}

// Clients bundles the three adapters built from one AWS config.
type Clients struct {
	Clusters *ClusterClient
	Secrets  *SecretClient
	Data     *DataClient
}

// LoadConfig resolves the AWS config for s. The profile is passed to the SDK
// directly; the process environment is left untouched.
func LoadConfig(ctx context.Context, s Settings) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, config.WithRegion(s.Region))
	}
	if s.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(s.Profile))
	}
	if s.AccessKeyID != "" && s.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// NewClients builds the adapters from cfg, applying the endpoint override if any.
func NewClients(cfg aws.Config, s Settings, logger *slog.Logger) *Clients {
	if logger == nil {
		logger = slog.Default()
	}

	rdsClient := rds.NewFromConfig(cfg, func(o *rds.Options) {
		if s.EndpointURL != "" {
			o.BaseEndpoint = aws.String(s.EndpointURL)
		}
	})
	smClient := secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
		if s.EndpointURL != "" {
			o.BaseEndpoint = aws.String(s.EndpointURL)
		}
	})
	dataClient := rdsdata.NewFromConfig(cfg, func(o *rdsdata.Options) {
		if s.EndpointURL != "" {
			o.BaseEndpoint = aws.String(s.EndpointURL)
		}
	})

	return &Clients{
		Clusters: NewClusterClient(rdsClient, logger),
		Secrets:  NewSecretClient(smClient, logger),
		Data:     NewDataClient(dataClient, logger),
	}
}
