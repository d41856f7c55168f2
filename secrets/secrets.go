package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/constants"
)

// ErrSecretNotFound is returned when a provider has no value for a key.
var ErrSecretNotFound = errors.New("secret not found")

// SecretsProvider resolves credentials such as the admin password and the
// GitHub token.
type SecretsProvider interface {
	GetSecret(ctx context.Context, key string) (string, error)
	Close() error
}

// NewSecretsProvider creates a secrets provider from configuration. A nil
// config or empty driver reads from the environment.
func NewSecretsProvider(ctx context.Context, cfg *config.SecretsConfig) (SecretsProvider, error) {
	if cfg == nil {
		return NewEnvSecretsProvider(""), nil
	}

	switch strings.ToLower(cfg.Driver) {
	case "", constants.SecretsDriverEnv:
		return NewEnvSecretsProvider(cfg.Prefix), nil
	case constants.SecretsDriverAWS, "aws":
		if cfg.Region == "" {
			return nil, fmt.Errorf("region is required for AWS Secrets Manager")
		}
		return NewAWSSecretsProvider(ctx, cfg.Region, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unsupported secrets driver: %s", cfg.Driver)
	}
}

// Lookup returns the secret for key, or "" when the provider reports it
// missing. Any other provider error is returned.
func Lookup(ctx context.Context, p SecretsProvider, key string) (string, error) {
	v, err := p.GetSecret(ctx, key)
	if errors.Is(err, ErrSecretNotFound) {
		return "", nil
	}
	return v, err
}
