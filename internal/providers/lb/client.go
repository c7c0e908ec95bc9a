package lb

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ovh/go-ovh/ovh"

	"github.com/zoneops/ovhsync/internal/logger"
)

// Backend is one IP attachment on a legacy OVH IP load balancer.
type Backend struct {
	IP     string
	Probe  string
	Weight int
}

// Client is the load balancer collaborator injected into the reconciler.
type Client interface {
	Name() string
	LoadBalancerExists(ctx context.Context, name string) (bool, error)
	// GetBackend returns nil when the IP is not attached.
	GetBackend(ctx context.Context, name, ip string) (*Backend, error)
	CreateBackend(ctx context.Context, name string, backend Backend) error
	SetProbe(ctx context.Context, name, ip, probe string) error
	SetWeight(ctx context.Context, name, ip string, weight int) error
	DeleteBackend(ctx context.Context, name, ip string) error
}

type OVHClient struct {
	client       *ovh.Client
	taskInterval time.Duration
}

func NewOVHClient(client *ovh.Client) *OVHClient {
	return &OVHClient{client: client, taskInterval: time.Second}
}

func (c *OVHClient) Name() string {
	return "ovh"
}

type ovhBackend struct {
	IPBackend string `json:"ipBackend"`
	Probe     string `json:"probe"`
	Weight    int    `json:"weight"`
}

func (c *OVHClient) LoadBalancerExists(ctx context.Context, name string) (bool, error) {
	var names []string
	if err := c.client.GetWithContext(ctx, "/ip/loadBalancing", &names); err != nil {
		return false, fmt.Errorf("list load balancers: %w", err)
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (c *OVHClient) GetBackend(ctx context.Context, name, ip string) (*Backend, error) {
	var ips []string
	listURL := fmt.Sprintf("/ip/loadBalancing/%s/backend", url.PathEscape(name))
	if err := c.client.GetWithContext(ctx, listURL, &ips); err != nil {
		return nil, fmt.Errorf("list backends of %s: %w", name, err)
	}

	attached := false
	for _, b := range ips {
		if b == ip {
			attached = true
			break
		}
	}
	if !attached {
		return nil, nil
	}

	var raw ovhBackend
	getURL := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	if err := c.client.GetWithContext(ctx, getURL, &raw); err != nil {
		return nil, fmt.Errorf("get backend %s of %s: %w", ip, name, err)
	}
	return &Backend{IP: raw.IPBackend, Probe: raw.Probe, Weight: raw.Weight}, nil
}

func (c *OVHClient) CreateBackend(ctx context.Context, name string, backend Backend) error {
	body := map[string]interface{}{
		"ipBackend": backend.IP,
		"probe":     backend.Probe,
		"weight":    backend.Weight,
	}
	createURL := fmt.Sprintf("/ip/loadBalancing/%s/backend", url.PathEscape(name))
	if err := c.client.PostWithContext(ctx, createURL, body, nil); err != nil {
		return fmt.Errorf("create backend %s on %s: %w", backend.IP, name, err)
	}
	return c.waitNoTask(ctx, name)
}

func (c *OVHClient) SetProbe(ctx context.Context, name, ip, probe string) error {
	body := map[string]interface{}{"probe": probe}
	putURL := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	if err := c.client.PutWithContext(ctx, putURL, body, nil); err != nil {
		return fmt.Errorf("set probe of backend %s on %s: %w", ip, name, err)
	}
	return c.waitNoTask(ctx, name)
}

func (c *OVHClient) SetWeight(ctx context.Context, name, ip string, weight int) error {
	body := map[string]interface{}{"weight": weight}
	postURL := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s/setWeight", url.PathEscape(name), url.PathEscape(ip))
	if err := c.client.PostWithContext(ctx, postURL, body, nil); err != nil {
		return fmt.Errorf("set weight of backend %s on %s: %w", ip, name, err)
	}
	return c.waitNoTask(ctx, name)
}

func (c *OVHClient) DeleteBackend(ctx context.Context, name, ip string) error {
	deleteURL := fmt.Sprintf("/ip/loadBalancing/%s/backend/%s", url.PathEscape(name), url.PathEscape(ip))
	if err := c.client.DeleteWithContext(ctx, deleteURL, nil); err != nil {
		return fmt.Errorf("delete backend %s on %s: %w", ip, name, err)
	}
	return c.waitNoTask(ctx, name)
}

// WaitReady blocks until the balancer's task queue is empty. The API refuses
// mutations while a task is pending, so callers drain before reconciling.
func (c *OVHClient) WaitReady(ctx context.Context, name string) error {
	return c.waitNoTask(ctx, name)
}

func (c *OVHClient) waitNoTask(ctx context.Context, name string) error {
	taskURL := fmt.Sprintf("/ip/loadBalancing/%s/task", url.PathEscape(name))
	for {
		var tasks []int64
		if err := c.client.GetWithContext(ctx, taskURL, &tasks); err != nil {
			return fmt.Errorf("list tasks of %s: %w", name, err)
		}
		if len(tasks) == 0 {
			return nil
		}
		logger.Debug("waiting for load balancer tasks", "lb", name, "pending", len(tasks))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.taskInterval):
		}
	}
}
