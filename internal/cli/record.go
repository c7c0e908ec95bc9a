package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoneops/ovhsync/internal/apply"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/dns"
)

var (
	recordDomain      string
	recordName        string
	recordType        string
	recordValue       string
	recordTTL         int
	recordState       string
	recordReplace     string
	recordRemoves     string
	recordCreate      bool
	recordAutoApprove bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "DNS record reconciliation",
	Long:  "Reconcile one DNS record (or a pattern-matched group of records) against its zone.",
}

var recordPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview record changes",
	Long:  "Compute and display the changes without applying them.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordPlan()
	},
}

var recordApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply record changes",
	Long:  "Compute the changes, apply them, and refresh the zone.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordApply()
	},
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List live records of a zone",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordList()
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	for _, cmd := range []*cobra.Command{recordPlanCmd, recordApplyCmd} {
		cmd.Flags().StringVarP(&recordDomain, "domain", "d", "", "Zone name (required)")
		cmd.Flags().StringVarP(&recordName, "name", "n", "", "Subdomain label, empty for the zone apex")
		cmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type (A, AAAA, CNAME, TXT, ...)")
		cmd.Flags().StringVar(&recordValue, "value", "", "Record value")
		cmd.Flags().IntVar(&recordTTL, "ttl", 0, "TTL in seconds (default 3600)")
		cmd.Flags().StringVarP(&recordState, "state", "s", "present", "Desired state (present/absent/append)")
		cmd.Flags().StringVar(&recordReplace, "replace", "", "Old value (or regex) to update in place")
		cmd.Flags().StringVar(&recordRemoves, "removes", "", "Regex matched against values for bulk deletion")
		cmd.Flags().BoolVar(&recordCreate, "create", false, "Create the record when --replace matches nothing")
		cmd.MarkFlagRequired("domain")
	}
	recordApplyCmd.Flags().BoolVar(&recordAutoApprove, "auto-approve", false, "Skip confirmation prompt")
	recordCmd.AddCommand(recordPlanCmd)
	recordCmd.AddCommand(recordApplyCmd)

	recordListCmd.Flags().StringVarP(&recordDomain, "domain", "d", "", "Zone name (required)")
	recordListCmd.MarkFlagRequired("domain")
	recordCmd.AddCommand(recordListCmd)
}

func buildDesiredRecord() *entities.DesiredRecord {
	desired := &entities.DesiredRecord{
		Domain:  recordDomain,
		Name:    recordName,
		Type:    entities.RecordType(recordType),
		Value:   recordValue,
		TTL:     recordTTL,
		State:   entities.RecordState(recordState),
		Replace: recordReplace,
		Removes: recordRemoves,
		Create:  recordCreate,
	}
	desired.ApplyDefaults()
	if err := desired.Validate(); err != nil {
		fail("Invalid parameters: %v", err)
	}
	return desired
}

func planRecordChanges(ctx context.Context, executor *apply.Executor, desired *entities.DesiredRecord) *plan.ChangeSet {
	live, err := executor.FetchLive(ctx, desired)
	if err != nil {
		fail("Error fetching live records: %v", err)
	}
	cs, err := plan.PlanRecord(desired, live)
	if err != nil {
		fail("Error computing plan: %v", err)
	}
	return cs
}

func runRecordPlan() {
	desired := buildDesiredRecord()
	client, err := newZoneClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}

	ctx := context.Background()
	executor := apply.NewExecutor(client)
	cs := planRecordChanges(ctx, executor, desired)

	printChangeSet(cs)
	printDiff(cs)
}

func runRecordApply() {
	desired := buildDesiredRecord()
	client, err := newZoneClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}

	ctx := context.Background()
	executor := apply.NewExecutor(client)
	cs := planRecordChanges(ctx, executor, desired)

	printChangeSet(cs)
	if cs.IsEmpty() {
		return
	}
	printDiff(cs)

	if !recordAutoApprove && !confirm("Proceed?") {
		fmt.Println("Cancelled.")
		return
	}

	result, err := executor.Apply(ctx, cs)
	if err != nil {
		fail("%s", ErrorStyle.Render(fmt.Sprintf("Apply failed: %v", err)))
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Applied %d change(s) to zone %s.", result.Applied, result.Zone)))
}

func runRecordList() {
	client, err := newZoneClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}

	ctx := context.Background()
	exists, err := client.ZoneExists(ctx, recordDomain)
	if err != nil {
		fail("Error checking zone: %v", err)
	}
	if !exists {
		fail("Zone %s does not exist", recordDomain)
	}

	records, err := client.ListRecords(ctx, recordDomain, dns.Filter{})
	if err != nil {
		fail("Error listing records: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("(none)")
		return
	}
	for _, r := range records {
		fmt.Printf("  %-20s %-6s %-12s -> %-30s (ttl: %d)\n",
			recordDomain, r.FieldType, displayName(r.SubDomain), r.Target, r.TTL)
	}
}
