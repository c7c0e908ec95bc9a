package reverse

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ovh/go-ovh/ovh"
)

// Reverse is the PTR attachment of an IP as the provider reports it.
type Reverse struct {
	IPReverse string `json:"ipReverse"`
	Reverse   string `json:"reverse"`
}

// Client manages the reverse entry of a single IP.
type Client interface {
	Name() string
	// Get returns nil when the IP has no reverse set.
	Get(ctx context.Context, ip string) (*Reverse, error)
	Set(ctx context.Context, ip, reverse string) error
	Delete(ctx context.Context, ip, ipReverse string) error
}

type OVHClient struct {
	client *ovh.Client
}

func NewOVHClient(client *ovh.Client) *OVHClient {
	return &OVHClient{client: client}
}

func (c *OVHClient) Name() string {
	return "ovh"
}

// ipPath encodes the /32 block form the API expects for single addresses.
func ipPath(ip string) string {
	return url.PathEscape(ip + "/32")
}

func (c *OVHClient) Get(ctx context.Context, ip string) (*Reverse, error) {
	var reverses []string
	listURL := fmt.Sprintf("/ip/%s/reverse", ipPath(ip))
	if err := c.client.GetWithContext(ctx, listURL, &reverses); err != nil {
		return nil, fmt.Errorf("list reverses of %s: %w", ip, err)
	}
	if len(reverses) == 0 {
		return nil, nil
	}

	// Only one reverse is expected for a /32.
	var rev Reverse
	getURL := fmt.Sprintf("/ip/%s/reverse/%s", ipPath(ip), url.PathEscape(reverses[0]))
	if err := c.client.GetWithContext(ctx, getURL, &rev); err != nil {
		return nil, fmt.Errorf("get reverse of %s: %w", ip, err)
	}
	return &rev, nil
}

func (c *OVHClient) Set(ctx context.Context, ip, reverse string) error {
	body := map[string]interface{}{
		"ipReverse": ip,
		"reverse":   reverse,
	}
	setURL := fmt.Sprintf("/ip/%s/reverse", ipPath(ip))
	if err := c.client.PostWithContext(ctx, setURL, body, nil); err != nil {
		return fmt.Errorf("set reverse of %s to %s: %w", ip, reverse, err)
	}
	return nil
}

func (c *OVHClient) Delete(ctx context.Context, ip, ipReverse string) error {
	deleteURL := fmt.Sprintf("/ip/%s/reverse/%s", ipPath(ip), url.PathEscape(ipReverse))
	if err := c.client.DeleteWithContext(ctx, deleteURL, nil); err != nil {
		return fmt.Errorf("delete reverse of %s: %w", ip, err)
	}
	return nil
}
