package dns

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v2"
	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"
	"github.com/cloudflare/cloudflare-go/v2/zones"

	"github.com/zoneops/ovhsync/internal/domain"
)

// CloudflareProvider implements ZoneClient against the Cloudflare API.
// Cloudflare applies mutations immediately, so RefreshZone is a no-op there.
type CloudflareProvider struct {
	client *cloudflare.Client
}

func NewCloudflareProvider(apiToken string) *CloudflareProvider {
	client := cloudflare.NewClient(
		option.WithAPIToken(apiToken),
	)
	return &CloudflareProvider{client: client}
}

func (p *CloudflareProvider) Name() string {
	return "cloudflare"
}

func (p *CloudflareProvider) getZoneID(ctx context.Context, zone string) (string, error) {
	resp, err := p.client.Zones.List(ctx, zones.ZoneListParams{
		Name: cloudflare.F(zone),
	})
	if err != nil {
		return "", fmt.Errorf("list zones: %w", err)
	}
	if len(resp.Result) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrZoneNotFound, zone)
	}
	return resp.Result[0].ID, nil
}

func (p *CloudflareProvider) ZoneExists(ctx context.Context, zone string) (bool, error) {
	_, err := p.getZoneID(ctx, zone)
	if errors.Is(err, domain.ErrZoneNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *CloudflareProvider) ListRecords(ctx context.Context, zone string, filter Filter) ([]Record, error) {
	zoneID, err := p.getZoneID(ctx, zone)
	if err != nil {
		return nil, err
	}

	params := cfdns.RecordListParams{
		ZoneID: cloudflare.F(zoneID),
	}
	if filter.FieldType != "" {
		params.Type = cloudflare.F(cfdns.RecordListParamsType(filter.FieldType))
	}

	var records []Record
	pager := p.client.DNS.Records.ListAutoPaging(ctx, params)
	for pager.Next() {
		raw := pager.Current()
		content := ""
		if str, ok := raw.Content.(string); ok {
			content = str
		}
		record := Record{
			ID:        raw.ID,
			Zone:      zone,
			SubDomain: GetSubDomain(raw.Name, zone),
			FieldType: string(raw.Type),
			Target:    content,
			TTL:       int(raw.TTL),
		}
		// Name filtering is applied here; the list endpoint only filters by type.
		if filter.Matches(record) {
			records = append(records, record)
		}
	}
	if err := pager.Err(); err != nil {
		return nil, fmt.Errorf("list records for zone %s: %w", zone, err)
	}
	return records, nil
}

func (p *CloudflareProvider) CreateRecord(ctx context.Context, zone string, spec RecordSpec) (string, error) {
	zoneID, err := p.getZoneID(ctx, zone)
	if err != nil {
		return "", err
	}

	params := cfdns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Record: cfdns.ARecordParam{
			Name:    cloudflare.F(GetFullDomain(spec.SubDomain, zone)),
			Type:    cloudflare.F(cfdns.ARecordType(spec.FieldType)),
			Content: cloudflare.F(spec.Target),
			TTL:     cloudflare.F(cfdns.TTL(spec.TTL)),
		},
	}

	created, err := p.client.DNS.Records.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create record %s %s in zone %s: %w", spec.FieldType, spec.SubDomain, zone, err)
	}
	return created.ID, nil
}

func (p *CloudflareProvider) UpdateRecord(ctx context.Context, zone string, id string, spec RecordSpec) error {
	zoneID, err := p.getZoneID(ctx, zone)
	if err != nil {
		return err
	}

	params := cfdns.RecordEditParams{
		ZoneID: cloudflare.F(zoneID),
		Record: cfdns.ARecordParam{
			Name:    cloudflare.F(GetFullDomain(spec.SubDomain, zone)),
			Type:    cloudflare.F(cfdns.ARecordType(spec.FieldType)),
			Content: cloudflare.F(spec.Target),
			TTL:     cloudflare.F(cfdns.TTL(spec.TTL)),
		},
	}

	if _, err := p.client.DNS.Records.Edit(ctx, id, params); err != nil {
		return fmt.Errorf("update record %s in zone %s: %w", id, zone, err)
	}
	return nil
}

func (p *CloudflareProvider) DeleteRecord(ctx context.Context, zone string, id string) error {
	zoneID, err := p.getZoneID(ctx, zone)
	if err != nil {
		return err
	}

	if _, err := p.client.DNS.Records.Delete(ctx, id, cfdns.RecordDeleteParams{
		ZoneID: cloudflare.F(zoneID),
	}); err != nil {
		return fmt.Errorf("delete record %s in zone %s: %w", id, zone, err)
	}
	return nil
}

func (p *CloudflareProvider) RefreshZone(ctx context.Context, zone string) error {
	return nil
}
