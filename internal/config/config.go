package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoneops/ovhsync/internal/domain"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

// Credentials is the provider configuration resolved at the boundary. The
// reconciling logic never reads the process environment itself; it only sees
// a constructed client.
type Credentials struct {
	Provider          string
	Endpoint          string
	ApplicationKey    string
	ApplicationSecret string
	ConsumerKey       string
	CloudflareToken   string
}

// Resolve fills empty fields from the environment, keeping explicit flag
// values ahead of env values. The OVH variables are the ones go-ovh itself
// honors, so a plain `ovhsync` run works with an existing OVH setup.
func (c *Credentials) Resolve() {
	if c.Provider == "" {
		c.Provider = "ovh"
	}
	if c.Endpoint == "" {
		c.Endpoint = os.Getenv("OVH_ENDPOINT")
	}
	if c.ApplicationKey == "" {
		c.ApplicationKey = os.Getenv("OVH_APPLICATION_KEY")
	}
	if c.ApplicationSecret == "" {
		c.ApplicationSecret = os.Getenv("OVH_APPLICATION_SECRET")
	}
	if c.ConsumerKey == "" {
		c.ConsumerKey = os.Getenv("OVH_CONSUMER_KEY")
	}
	if c.CloudflareToken == "" {
		c.CloudflareToken = os.Getenv("CLOUDFLARE_API_TOKEN")
	}
}

// ProviderCredentials shapes the resolved values for the provider factory.
func (c *Credentials) ProviderCredentials() dns.Credentials {
	switch c.Provider {
	case "cloudflare":
		return dns.Credentials{"api_token": c.CloudflareToken}
	default:
		return dns.Credentials{
			"endpoint":           c.Endpoint,
			"application_key":    c.ApplicationKey,
			"application_secret": c.ApplicationSecret,
			"consumer_key":       c.ConsumerKey,
		}
	}
}

// SyncFile is the multi-record desired-state document consumed by
// `ovhsync sync -f`.
type SyncFile struct {
	Records []entities.DesiredRecord `yaml:"records"`
}

// LoadSyncFile reads and validates a desired-state file. Validation happens
// here, before any provider call is made.
func LoadSyncFile(path string) (*SyncFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigReadFailed, path, err)
	}

	var sf SyncFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, path, err)
	}

	for i := range sf.Records {
		sf.Records[i].ApplyDefaults()
		if err := sf.Records[i].Validate(); err != nil {
			return nil, domain.WrapEntity("record", fmt.Sprintf("%d", i), err)
		}
	}
	return &sf, nil
}
