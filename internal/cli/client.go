package cli

import (
	"fmt"

	"github.com/ovh/go-ovh/ovh"

	"github.com/zoneops/ovhsync/internal/config"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

func credentials() *config.Credentials {
	c := &config.Credentials{
		Provider:          Provider,
		Endpoint:          Endpoint,
		ApplicationKey:    ApplicationKey,
		ApplicationSecret: ApplicationSecret,
		ConsumerKey:       ConsumerKey,
		CloudflareToken:   CloudflareToken,
	}
	c.Resolve()
	return c
}

func newZoneClient() (dns.ZoneClient, error) {
	c := credentials()
	return dns.NewFactory().Create(c.Provider, c.ProviderCredentials())
}

// newOVHRawClient builds the raw client the load balancer and reverse paths
// need; both are OVH-only APIs regardless of the --provider flag.
func newOVHRawClient() (*ovh.Client, error) {
	c := credentials()
	var (
		client *ovh.Client
		err    error
	)
	if c.ApplicationKey == "" && c.ApplicationSecret == "" && c.ConsumerKey == "" {
		client, err = ovh.NewDefaultClient()
	} else {
		client, err = ovh.NewClient(c.Endpoint, c.ApplicationKey, c.ApplicationSecret, c.ConsumerKey)
	}
	if err != nil {
		return nil, fmt.Errorf("create ovh client: %w", err)
	}
	return client, nil
}
