package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoneops/ovhsync/internal/apply"
	"github.com/zoneops/ovhsync/internal/config"
	"github.com/zoneops/ovhsync/internal/plan"
)

var (
	syncFile        string
	syncAutoApprove bool
	syncDryRun      bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile a desired-state file",
	Long:  "Reconcile every record declared in a YAML desired-state file, applying per zone with one refresh per touched zone.",
	Run: func(cmd *cobra.Command, args []string) {
		runSync()
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVarP(&syncFile, "file", "f", "", "Desired-state YAML file (required)")
	syncCmd.Flags().BoolVar(&syncAutoApprove, "auto-approve", false, "Skip confirmation prompt")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute and display the plans without applying")
	syncCmd.MarkFlagRequired("file")
}

func runSync() {
	sf, err := config.LoadSyncFile(syncFile)
	if err != nil {
		fail("Error loading %s: %v", syncFile, err)
	}
	if len(sf.Records) == 0 {
		fmt.Println("Nothing declared.")
		return
	}

	client, err := newZoneClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}

	ctx := context.Background()
	executor := apply.NewExecutor(client)

	// Plans are computed up front against a single snapshot per zone so the
	// preview matches what apply will do.
	var changeSets []*plan.ChangeSet
	total := 0
	for i := range sf.Records {
		cs := planRecordChanges(ctx, executor, &sf.Records[i])
		changeSets = append(changeSets, cs)
		total += cs.Len()
	}

	if total == 0 {
		fmt.Println("No change.")
		return
	}

	for _, cs := range changeSets {
		if !cs.IsEmpty() {
			printChangeSet(cs)
		}
	}

	// Change sets are merged per zone so each touched zone gets exactly one
	// refresh. Conflicting declarations are rejected before anything runs.
	var zones []string
	perZone := make(map[string][]*plan.ChangeSet)
	for _, cs := range changeSets {
		if cs.IsEmpty() {
			continue
		}
		if _, ok := perZone[cs.Zone]; !ok {
			zones = append(zones, cs.Zone)
		}
		perZone[cs.Zone] = append(perZone[cs.Zone], cs)
	}
	merged := make([]*plan.ChangeSet, 0, len(zones))
	for _, zone := range zones {
		m, err := plan.Merge(zone, perZone[zone]...)
		if err != nil {
			fail("Error merging plans: %v", err)
		}
		merged = append(merged, m)
	}

	if syncDryRun {
		return
	}
	if !syncAutoApprove && !confirm(fmt.Sprintf("Apply %d change(s)?", total)) {
		fmt.Println("Cancelled.")
		return
	}

	applied := 0
	for _, cs := range merged {
		result, err := executor.Apply(ctx, cs)
		applied += result.Applied
		if err != nil {
			fail("%s", ErrorStyle.Render(fmt.Sprintf("Apply failed after %d change(s): %v", applied, err)))
		}
	}
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("Applied %d change(s).", applied)))
}
