package resolve

import (
	"strings"

	"rdsq/internal/domain"
)

// SecretsForCluster narrows the listing to the credential secrets of one cluster,
// keeping listing order. Names outside the rds-db-credentials/<resource-id>/ shape
// are excluded rather than rejected.
func SecretsForCluster(resourceID string, secrets []domain.SecretDescriptor) []domain.SecretDescriptor {
	prefix := domain.SecretNamePrefix + resourceID + "/"
	var out []domain.SecretDescriptor
	for _, s := range secrets {
		if strings.HasPrefix(s.Name, prefix) {
			out = append(out, s)
		}
	}
	return out
}

// Secret selects one credential secret for the cluster with the given resource id.
//
// A requested user matches by name suffix, so "bob" also matches ".../jimbob".
// The first match in listing order wins.
func Secret(resourceID string, requestedUser *string, listing domain.SecretListing) (domain.SecretDescriptor, error) {
	if listing.Missing {
		return domain.SecretDescriptor{}, domain.ErrSecretLookupEmpty
	}

	candidates := SecretsForCluster(resourceID, listing.Secrets)
	if len(candidates) == 0 {
		return domain.SecretDescriptor{}, &domain.NoSecretsForClusterError{ResourceID: resourceID}
	}

	if requestedUser != nil {
		for _, s := range candidates {
			if strings.HasSuffix(s.Name, *requestedUser) {
				return s, nil
			}
		}
		return domain.SecretDescriptor{}, &domain.SecretNotFoundError{
			RequestedUser: *requestedUser,
			Available:     userIDs(candidates),
		}
	}

	if len(candidates) > 1 {
		return domain.SecretDescriptor{}, &domain.SecretAmbiguousError{Available: userIDs(candidates)}
	}
	return candidates[0], nil
}

func userIDs(secrets []domain.SecretDescriptor) []string {
	ids := make([]string, len(secrets))
	for i, s := range secrets {
		ids[i] = s.UserID()
	}
	return ids
}
