package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"evalgo.org/fleetsum/internal/fleet"
	"evalgo.org/fleetsum/models"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats [fleet-state-file]",
	Short: "Show the per-instance-type fleet breakdown",
	Long: `Aggregate a fleet-state report and display the per-instance-type
breakdown instead of the three-line statistics file.

Validation is as strict as summarize: the first invalid line aborts the
run. Nothing is written to disk.

Examples:
  fleetsum stats
  fleetsum stats /var/lib/fleet/FleetState.txt
  fleetsum stats --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "output format (table, json)")
}

func runStats(cmd *cobra.Command, args []string) error {
	input := cfg.Input.FleetState
	if len(args) == 1 {
		input = args[0]
	}

	summary, err := aggregateFile(input)
	if err != nil {
		return err
	}

	if statsFormat == "json" {
		return printJSON(summary)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tHOSTS\tEMPTY\tFULL\tMOST FILLED")
	for _, t := range summary.Types {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			t.Type, t.Hosts, t.EmptyHosts, t.FullHosts, mostFilledCell(t))
	}
	w.Flush()
	fmt.Printf("\nTotal: %d hosts\n", summary.TotalHosts)

	return nil
}

// aggregateFile validates and aggregates a report without writing any
// statistics.
func aggregateFile(input string) (*models.FleetSummary, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open fleet state: %w", err)
	}
	defer f.Close()

	agg := fleet.NewAggregator()
	if err := agg.ReadFrom(f); err != nil {
		return nil, err
	}
	return agg.Summary(), nil
}

// mostFilledCell renders the most-filled pair for the table. The (0, 0)
// sentinel means no host of the type has room.
func mostFilledCell(t models.TypeSummary) string {
	if t.MostFilledHosts == 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d empty", t.MostFilledHosts, t.MostFilledEmptySlots)
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
