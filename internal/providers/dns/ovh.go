package dns

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/ovh/go-ovh/ovh"

	"github.com/zoneops/ovhsync/internal/retry"
)

// OVHProvider talks to the OVH domain API. Record mutations are staged on the
// provider side and only propagate once RefreshZone posts the zone refresh.
type OVHProvider struct {
	client *ovh.Client
}

func NewOVHProvider(endpoint, applicationKey, applicationSecret, consumerKey string) (*OVHProvider, error) {
	client, err := ovh.NewClient(endpoint, applicationKey, applicationSecret, consumerKey)
	if err != nil {
		return nil, fmt.Errorf("create ovh client: %w", err)
	}
	return &OVHProvider{client: client}, nil
}

// NewOVHProviderFromEnv builds a client from OVH_ENDPOINT, OVH_APPLICATION_KEY,
// OVH_APPLICATION_SECRET and OVH_CONSUMER_KEY (or ovh.conf).
func NewOVHProviderFromEnv() (*OVHProvider, error) {
	client, err := ovh.NewDefaultClient()
	if err != nil {
		return nil, fmt.Errorf("create ovh client: %w", err)
	}
	return &OVHProvider{client: client}, nil
}

func (p *OVHProvider) Name() string {
	return "ovh"
}

type ovhRecord struct {
	ID        int64  `json:"id"`
	Zone      string `json:"zone"`
	SubDomain string `json:"subDomain"`
	FieldType string `json:"fieldType"`
	Target    string `json:"target"`
	TTL       int    `json:"ttl"`
}

type ovhRecordBody struct {
	SubDomain string `json:"subDomain,omitempty"`
	FieldType string `json:"fieldType,omitempty"`
	Target    string `json:"target"`
	TTL       int    `json:"ttl"`
}

func (p *OVHProvider) ZoneExists(ctx context.Context, zone string) (bool, error) {
	var zones []string
	err := retry.Do(ctx, func() error {
		return p.client.GetWithContext(ctx, "/domain/zone", &zones)
	}, retry.WithIsRetryable(IsRetryable))
	if err != nil {
		return false, fmt.Errorf("list zones: %w", err)
	}
	for _, z := range zones {
		if z == zone {
			return true, nil
		}
	}
	return false, nil
}

func (p *OVHProvider) ListRecords(ctx context.Context, zone string, filter Filter) ([]Record, error) {
	listURL := fmt.Sprintf("/domain/zone/%s/record", url.PathEscape(zone))
	query := url.Values{}
	if filter.FieldType != "" {
		query.Set("fieldType", filter.FieldType)
	}
	if filter.SubDomain != nil && *filter.SubDomain != "" {
		query.Set("subDomain", *filter.SubDomain)
	}
	if len(query) > 0 {
		listURL += "?" + query.Encode()
	}

	var ids []int64
	err := retry.Do(ctx, func() error {
		return p.client.GetWithContext(ctx, listURL, &ids)
	}, retry.WithIsRetryable(IsRetryable))
	if err != nil {
		return nil, fmt.Errorf("list records for zone %s: %w", zone, err)
	}

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		detailURL := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), id)
		var rec ovhRecord
		err := retry.Do(ctx, func() error {
			return p.client.GetWithContext(ctx, detailURL, &rec)
		}, retry.WithIsRetryable(IsRetryable))
		if err != nil {
			return nil, fmt.Errorf("get record %d in zone %s: %w", id, zone, err)
		}
		record := Record{
			ID:        strconv.FormatInt(rec.ID, 10),
			Zone:      rec.Zone,
			SubDomain: rec.SubDomain,
			FieldType: rec.FieldType,
			Target:    rec.Target,
			TTL:       rec.TTL,
		}
		// The API filters server-side; the apex constraint (empty subDomain)
		// is applied here because it cannot be expressed as a query param.
		if filter.Matches(record) {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (p *OVHProvider) CreateRecord(ctx context.Context, zone string, spec RecordSpec) (string, error) {
	body := ovhRecordBody{
		SubDomain: spec.SubDomain,
		FieldType: spec.FieldType,
		Target:    spec.Target,
		TTL:       spec.TTL,
	}
	var created ovhRecord
	createURL := fmt.Sprintf("/domain/zone/%s/record", url.PathEscape(zone))
	if err := p.client.PostWithContext(ctx, createURL, body, &created); err != nil {
		return "", fmt.Errorf("create record %s %s in zone %s: %w", spec.FieldType, spec.SubDomain, zone, err)
	}
	return strconv.FormatInt(created.ID, 10), nil
}

func (p *OVHProvider) UpdateRecord(ctx context.Context, zone string, id string, spec RecordSpec) error {
	recordID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}
	body := ovhRecordBody{
		SubDomain: spec.SubDomain,
		Target:    spec.Target,
		TTL:       spec.TTL,
	}
	updateURL := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), recordID)
	if err := p.client.PutWithContext(ctx, updateURL, body, nil); err != nil {
		return fmt.Errorf("update record %s in zone %s: %w", id, zone, err)
	}
	return nil
}

func (p *OVHProvider) DeleteRecord(ctx context.Context, zone string, id string) error {
	recordID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}
	deleteURL := fmt.Sprintf("/domain/zone/%s/record/%d", url.PathEscape(zone), recordID)
	if err := p.client.DeleteWithContext(ctx, deleteURL, nil); err != nil {
		return fmt.Errorf("delete record %s in zone %s: %w", id, zone, err)
	}
	return nil
}

func (p *OVHProvider) RefreshZone(ctx context.Context, zone string) error {
	refreshURL := fmt.Sprintf("/domain/zone/%s/refresh", url.PathEscape(zone))
	err := retry.Do(ctx, func() error {
		return p.client.PostWithContext(ctx, refreshURL, nil, nil)
	}, retry.WithIsRetryable(IsRetryable))
	if err != nil {
		return fmt.Errorf("refresh zone %s: %w", zone, err)
	}
	return nil
}
