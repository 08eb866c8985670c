package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"evalgo.org/fleetsum/internal/report"
	"evalgo.org/fleetsum/models"
)

var (
	summarizeInput  string
	summarizeOutput string
	summarizeStdout bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [fleet-state-file]",
	Short: "Compute the statistics summary for a fleet-state report",
	Long: `Validate every line of a fleet-state report, aggregate per-instance-type
occupancy counts, and write the three-line statistics summary.

The run is all or nothing: the first invalid line aborts it with an error
of the form "Line <N>: <message>" and no statistics file is written.

Examples:
  fleetsum summarize
  fleetsum summarize /var/lib/fleet/FleetState.txt
  fleetsum summarize --output /tmp/Statistics.txt
  fleetsum summarize --stdout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeInput, "input", "", "fleet-state report to read (overrides config)")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "output", "o", "", "statistics file to write (overrides config)")
	summarizeCmd.Flags().BoolVar(&summarizeStdout, "stdout", false, "also print the summary lines to stdout")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	input := cfg.Input.FleetState
	if summarizeInput != "" {
		input = summarizeInput
	}
	if len(args) == 1 {
		input = args[0]
	}

	output := cfg.Output.Statistics
	if summarizeOutput != "" {
		output = summarizeOutput
	}

	summary, err := summarizeFile(input, output)
	if err != nil {
		return err
	}

	if summarizeStdout || cfg.Output.Stdout {
		fmt.Print(report.Render(summary))
	} else {
		fmt.Printf("✓ Summary for %d hosts written to %s\n", summary.TotalHosts, output)
	}
	return nil
}

// summarizeFile runs the whole pipeline for one report: read, validate,
// aggregate, render, persist. The output file is not touched unless every
// input line validated.
func summarizeFile(input, output string) (*models.FleetSummary, error) {
	summary, err := aggregateFile(input)
	if err != nil {
		return nil, err
	}
	if err := report.Write(output, summary); err != nil {
		return nil, err
	}
	return summary, nil
}
