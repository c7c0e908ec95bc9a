package dns

import (
	"fmt"
)

// Credentials holds provider credentials already resolved by the config
// boundary; the reconciler never reads the process environment itself.
type Credentials map[string]string

type CreatorFunc func(creds Credentials) (ZoneClient, error)

type Factory struct {
	creators map[string]CreatorFunc
}

func NewFactory() *Factory {
	return &Factory{
		creators: map[string]CreatorFunc{
			"ovh":        createOVH,
			"cloudflare": createCloudflare,
		},
	}
}

func (f *Factory) Create(providerType string, creds Credentials) (ZoneClient, error) {
	creator, ok := f.creators[providerType]
	if !ok {
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
	return creator(creds)
}

func (f *Factory) Register(providerType string, creator CreatorFunc) {
	f.creators[providerType] = creator
}

func createOVH(creds Credentials) (ZoneClient, error) {
	endpoint := creds["endpoint"]
	applicationKey := creds["application_key"]
	applicationSecret := creds["application_secret"]
	consumerKey := creds["consumer_key"]
	if applicationKey == "" && applicationSecret == "" && consumerKey == "" {
		return NewOVHProviderFromEnv()
	}
	return NewOVHProvider(endpoint, applicationKey, applicationSecret, consumerKey)
}

func createCloudflare(creds Credentials) (ZoneClient, error) {
	apiToken, ok := creds["api_token"]
	if !ok || apiToken == "" {
		return nil, fmt.Errorf("missing credential: api_token")
	}
	return NewCloudflareProvider(apiToken), nil
}
