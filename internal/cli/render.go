package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoneops/ovhsync/internal/plan"
)

func printChangeSet(cs *plan.ChangeSet) {
	if cs.IsEmpty() {
		fmt.Println("No change.")
		return
	}

	fmt.Printf("Plan for zone %s: %s\n", cs.Zone, cs.Summary())
	for _, del := range cs.Deletes {
		fmt.Println(ChangeDeleteStyle.Render(fmt.Sprintf("- %s %s.%s -> %s (ttl %d)",
			del.Old.FieldType, displayName(del.Old.SubDomain), cs.Zone, del.Old.Target, del.Old.TTL)))
	}
	for _, upd := range cs.Updates {
		fmt.Println(ChangeUpdateStyle.Render(fmt.Sprintf("~ %s %s.%s: %s (ttl %d) -> %s (ttl %d)",
			upd.Spec.FieldType, displayName(upd.Spec.SubDomain), cs.Zone,
			upd.Old.Target, upd.Old.TTL, upd.Spec.Target, upd.Spec.TTL)))
	}
	for _, spec := range cs.Creates {
		fmt.Println(ChangeCreateStyle.Render(fmt.Sprintf("+ %s %s.%s -> %s (ttl %d)",
			spec.FieldType, displayName(spec.SubDomain), cs.Zone, spec.Target, spec.TTL)))
	}
}

func printDiff(cs *plan.ChangeSet) {
	diff := cs.Diff()
	if diff.IsEmpty() {
		return
	}
	data, err := yaml.Marshal(diff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling diff: %v\n", err)
		return
	}
	fmt.Println("\nDiff (changed records only):")
	fmt.Println(string(data))
}

func displayName(subDomain string) string {
	if subDomain == "" {
		return "@"
	}
	return subDomain
}

func confirm(prompt string) bool {
	fmt.Printf("\n%s (y/N): ", prompt)
	var response string
	fmt.Scanln(&response)
	return strings.ToLower(response) == "y"
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
