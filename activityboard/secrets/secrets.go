package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Provider resolves a secret value by its id
type Provider interface {
	Secret(ctx context.Context, id string) (string, error)
}

type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSProvider reads secrets from AWS Secrets Manager
type AWSProvider struct {
	client secretsManagerAPI
}

type Options struct {
	Region    string
	AccessKey string
	SecretKey string
}

func NewAWSProvider(ctx context.Context, opts Options) (*AWSProvider, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &AWSProvider{client: secretsmanager.NewFromConfig(cfg)}, nil
}

// Secret returns the secret string. JSON object secrets are reduced to a single
// value: the key after '#' in the id ("db-creds#password"), or "value" /
// "password" / "token" when no key is given.
func (p *AWSProvider) Secret(ctx context.Context, id string) (string, error) {
	secretID, key, _ := strings.Cut(id, "#")

	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}

	slog.Info("Secret loaded",
		slog.String("type", "sys"),
		slog.String("secret_id", secretID))

	return extractValue(*out.SecretString, key)
}

var ErrKeyNotFound = errors.New("secret key not found")

func extractValue(raw, key string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		if key != "" {
			return "", fmt.Errorf("%w: %s (secret is not a JSON object)", ErrKeyNotFound, key)
		}
		return trimmed, nil
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
		return "", fmt.Errorf("failed to decode secret JSON: %w", err)
	}

	keys := []string{key}
	if key == "" {
		keys = []string{"value", "password", "token"}
	}
	for _, k := range keys {
		if v, ok := values[k]; ok {
			return fmt.Sprint(v), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(keys, ", "))
}
