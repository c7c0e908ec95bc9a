package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoneops/ovhsync/internal/apply"
	"github.com/zoneops/ovhsync/internal/entities"
	"github.com/zoneops/ovhsync/internal/plan"
	"github.com/zoneops/ovhsync/internal/providers/lb"
)

var (
	lbName        string
	lbIP          string
	lbProbe       string
	lbWeight      int
	lbState       string
	lbAutoApprove bool
)

var lbCmd = &cobra.Command{
	Use:   "lb",
	Short: "Load balancer backend reconciliation",
	Long:  "Reconcile one backend IP attachment (presence, probe, weight) on an IP load balancer.",
}

var lbPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the backend change",
	Run: func(cmd *cobra.Command, args []string) {
		runLBPlan()
	},
}

var lbApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the backend change",
	Run: func(cmd *cobra.Command, args []string) {
		runLBApply()
	},
}

func init() {
	rootCmd.AddCommand(lbCmd)
	for _, cmd := range []*cobra.Command{lbPlanCmd, lbApplyCmd} {
		cmd.Flags().StringVarP(&lbName, "name", "n", "", "Load balancer internal name, e.g. ip-1.1.1.1 (required)")
		cmd.Flags().StringVar(&lbIP, "ip", "", "Backend IP address (required)")
		cmd.Flags().StringVar(&lbProbe, "probe", "none", "Health probe (none/http/icmp/oco)")
		cmd.Flags().IntVar(&lbWeight, "weight", 0, "Backend weight 1-100 (default 8)")
		cmd.Flags().StringVarP(&lbState, "state", "s", "present", "Desired state (present/absent)")
		cmd.MarkFlagRequired("name")
		cmd.MarkFlagRequired("ip")
	}
	lbApplyCmd.Flags().BoolVar(&lbAutoApprove, "auto-approve", false, "Skip confirmation prompt")
	lbCmd.AddCommand(lbPlanCmd)
	lbCmd.AddCommand(lbApplyCmd)
}

func buildBackendSpec() *entities.BackendSpec {
	spec := &entities.BackendSpec{
		Name:   lbName,
		IP:     lbIP,
		Probe:  entities.ProbeType(lbProbe),
		Weight: lbWeight,
		State:  entities.RecordState(lbState),
	}
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		fail("Invalid parameters: %v", err)
	}
	return spec
}

func planBackendChange(ctx context.Context) (*entities.BackendSpec, *plan.BackendChange, *apply.BackendExecutor) {
	spec := buildBackendSpec()
	raw, err := newOVHRawClient()
	if err != nil {
		fail("Error creating provider client: %v", err)
	}
	client := lb.NewOVHClient(raw)

	// The API refuses mutations while a task is pending.
	if err := client.WaitReady(ctx, spec.Name); err != nil {
		fail("Error waiting for load balancer: %v", err)
	}

	executor := apply.NewBackendExecutor(client)
	current, err := executor.FetchCurrent(ctx, spec)
	if err != nil {
		fail("Error fetching backend: %v", err)
	}
	return spec, plan.PlanBackend(spec, current), executor
}

func printBackendChange(spec *entities.BackendSpec, ch *plan.BackendChange) {
	switch ch.Type {
	case plan.ChangeTypeNoop:
		fmt.Println("No change.")
	case plan.ChangeTypeCreate:
		fmt.Println(ChangeCreateStyle.Render(fmt.Sprintf("+ backend %s on %s (probe %s, weight %d)",
			spec.IP, spec.Name, ch.New.Probe, ch.New.Weight)))
	case plan.ChangeTypeUpdate:
		if ch.ProbeChanged {
			fmt.Println(ChangeUpdateStyle.Render(fmt.Sprintf("~ backend %s on %s: probe %s -> %s",
				spec.IP, spec.Name, ch.Old.Probe, ch.New.Probe)))
		}
		if ch.WeightChanged {
			fmt.Println(ChangeUpdateStyle.Render(fmt.Sprintf("~ backend %s on %s: weight %d -> %d",
				spec.IP, spec.Name, ch.Old.Weight, ch.New.Weight)))
		}
	case plan.ChangeTypeDelete:
		fmt.Println(ChangeDeleteStyle.Render(fmt.Sprintf("- backend %s on %s", spec.IP, spec.Name)))
	}
}

func runLBPlan() {
	ctx := context.Background()
	spec, ch, _ := planBackendChange(ctx)
	printBackendChange(spec, ch)
}

func runLBApply() {
	ctx := context.Background()
	spec, ch, executor := planBackendChange(ctx)
	printBackendChange(spec, ch)
	if ch.Type == plan.ChangeTypeNoop {
		return
	}

	if !lbAutoApprove && !confirm("Proceed?") {
		fmt.Println("Cancelled.")
		return
	}

	if err := executor.Apply(ctx, spec, ch); err != nil {
		fail("%s", ErrorStyle.Render(fmt.Sprintf("Apply failed: %v", err)))
	}
	fmt.Println(SuccessStyle.Render("Backend reconciled."))
}
