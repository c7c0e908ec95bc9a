package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoneops/ovhsync/internal/apply"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/reverse"
)

var (
	reverseIP          string
	reverseValue       string
	reverseState       string
	reverseAutoApprove bool
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "IP reverse reconciliation",
	Long:  "Reconcile the reverse (PTR) entry of an IP address. With state=present and no --reverse, only checks one exists.",
}

var reversePlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the reverse change",
	Run: func(cmd *cobra.Command, args []string) {
		runReversePlan()
	},
}

var reverseApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the reverse change",
	Run: func(cmd *cobra.Command, args []string) {
		runReverseApply()
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)
	for _, cmd := range []*cobra.Command{reversePlanCmd, reverseApplyCmd} {
		cmd.Flags().StringVar(&reverseIP, "ip", "", "IP address (required)")
		cmd.Flags().StringVarP(&reverseValue, "reverse", "r", "", "Reverse name to associate with the IP")
		cmd.Flags().StringVarP(&reverseState, "state", "s", "present", "Desired state (present/absent)")
		cmd.MarkFlagRequired("ip")
	}
	reverseApplyCmd.Flags().BoolVar(&reverseAutoApprove, "auto-approve", false, "Skip confirmation prompt")
	reverseCmd.AddCommand(reversePlanCmd)
	reverseCmd.AddCommand(reverseApplyCmd)
}

func buildReverseSpec() *entities.ReverseSpec {
	spec := &entities.ReverseSpec{
		IP:      reverseIP,
		Reverse: reverseValue,
		State:   entities.RecordState(reverseState),
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		fail("Invalid parameters: %v", err)
	}
	return spec
}

func planReverseChange(ctx context.Context) (*entities.ReverseSpec, *plan.ReverseChange, *apply.ReverseExecutor) {
	spec := buildReverseSpec()
	raw, err := newOVHRawClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}
	executor := apply.NewReverseExecutor(reverse.NewOVHClient(raw))

	current, err := executor.FetchCurrent(ctx, spec)
	if err != nil {
		fail("Error fetching reverse: %v", err)
	}
	ch, err := plan.PlanReverse(spec, current)
	if err != nil {
		fail("%v", err)
	}
	return spec, ch, executor
}

func printReverseChange(spec *entities.ReverseSpec, ch *plan.ReverseChange) {
	switch ch.Type {
	case plan.ChangeTypeNoop:
		if ch.Before != "" {
			fmt.Printf("Reverse of %s is %s. No change.\n", spec.IP, ch.Before)
		} else {
			fmt.Println("No change.")
		}
	case plan.ChangeTypeCreate:
		fmt.Println(ChangeCreateStyle.Render(fmt.Sprintf("+ reverse %s -> %s", spec.IP, ch.After)))
	case plan.ChangeTypeUpdate:
		fmt.Println(ChangeUpdateStyle.Render(fmt.Sprintf("~ reverse %s: %s -> %s", spec.IP, ch.Before, ch.After)))
	case plan.ChangeTypeDelete:
		fmt.Println(ChangeDeleteStyle.Render(fmt.Sprintf("- reverse %s (was %s)", spec.IP, ch.Before)))
	}
}

func runReversePlan() {
	ctx := context.Background()
	spec, ch, _ := planReverseChange(ctx)
	printReverseChange(spec, ch)
}

func runReverseApply() {
	ctx := context.Background()
	spec, ch, executor := planReverseChange(ctx)
	printReverseChange(spec, ch)
	if ch.Type == plan.ChangeTypeNoop {
		return
	}

	if !reverseAutoApprove && !confirm("Proceed?") {
		fmt.Println("Cancelled.")
		return
	}

	if err := executor.Apply(ctx, spec, ch); err != nil {
		fail("%s", ErrorStyle.Render(fmt.Sprintf("Apply failed: %v", err)))
	}
	fmt.Println(SuccessStyle.Render("Reverse reconciled."))
}
