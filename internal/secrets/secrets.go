package secrets

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Provider resolves credentials by logical secret name.
type Provider interface {
	Get(ctx context.Context, name string) (string, error)
}

type GCPProvider struct {
	client  *secretmanager.Client
	project string
}

func NewGCPProvider(ctx context.Context, project string) (*GCPProvider, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create secret manager client: %w", err)
	}

	return &GCPProvider{
		client:  client,
		project: project,
	}, nil
}

func (p *GCPProvider) Close() error {
	return p.client.Close()
}

func (p *GCPProvider) Get(ctx context.Context, name string) (string, error) {
	resp, err := p.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", p.project, name),
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}

	return string(resp.GetPayload().GetData()), nil
}

// StaticProvider serves secrets from an in-memory map. Used for local runs
// and tests where Secret Manager is unavailable.
type StaticProvider struct {
	values map[string]string
}

func NewStaticProvider(values map[string]string) *StaticProvider {
	return &StaticProvider{values: values}
}

func (p *StaticProvider) Get(_ context.Context, name string) (string, error) {
	value, ok := p.values[name]
	if !ok || value == "" {
		return "", fmt.Errorf("secret %s not found", name)
	}
	return value, nil
}
