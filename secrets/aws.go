package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// secretsManagerAPI is the subset of the Secrets Manager client we call.
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsProvider implements SecretsProvider using AWS Secrets Manager
type AWSSecretsProvider struct {
	client secretsManagerAPI
	prefix string
}

var _ SecretsProvider = (*AWSSecretsProvider)(nil)

// NewAWSSecretsProvider creates a new AWS Secrets Manager provider
func NewAWSSecretsProvider(ctx context.Context, region, prefix string) (*AWSSecretsProvider, error) {
	if region == "" {
		return nil, fmt.Errorf("region is required for AWS Secrets Manager")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &AWSSecretsProvider{
		client: secretsmanager.NewFromConfig(cfg),
		prefix: prefix,
	}, nil
}

// GetSecret retrieves prefix+key from Secrets Manager. A missing prefixed
// secret falls back to the bare key.
func (a *AWSSecretsProvider) GetSecret(ctx context.Context, key string) (string, error) {
	if a.prefix != "" {
		v, err := a.get(ctx, a.prefix+key)
		if err == nil || !errors.Is(err, ErrSecretNotFound) {
			return v, err
		}
	}
	return a.get(ctx, key)
}

func (a *AWSSecretsProvider) get(ctx context.Context, name string) (string, error) {
	out, err := a.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var nf *types.ResourceNotFoundException
		if errors.As(err, &nf) {
			return "", fmt.Errorf("%w in secrets manager: %s", ErrSecretNotFound, name)
		}
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", name)
	}
	return *out.SecretString, nil
}

// Close is a no-op; the SDK client holds no resources.
func (a *AWSSecretsProvider) Close() error {
	return nil
}
