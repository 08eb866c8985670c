package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/fleetsum/internal/audit"
)

var checkCmd = &cobra.Command{
	Use:   "check [fleet-state-file]",
	Short: "Check a fleet-state report for validation problems",
	Long: `Check a fleet-state report without writing any statistics.

By default the check stops at the first invalid line, exactly like
summarize. With --all the whole file is scanned and every problem is
reported, which is the mode to reach for when repairing a broken report.

Examples:
  fleetsum check
  fleetsum check /var/lib/fleet/FleetState.txt
  fleetsum check --all
  fleetsum check --all --max-findings 20
  fleetsum check --all --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("all", false, "scan the whole file instead of stopping at the first problem")
	checkCmd.Flags().Int("max-findings", 0, "stop after this many findings with --all (0 = from config)")
	checkCmd.Flags().Bool("json", false, "output the scan report as JSON")
	checkCmd.Flags().Bool("verbose", false, "log scan progress")
}

func runCheck(cmd *cobra.Command, args []string) error {
	scanAll, _ := cmd.Flags().GetBool("all")
	maxFindings, _ := cmd.Flags().GetInt("max-findings")
	outputJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	input := cfg.Input.FleetState
	if len(args) == 1 {
		input = args[0]
	}
	if maxFindings == 0 {
		maxFindings = cfg.Audit.MaxFindings
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open fleet state: %w", err)
	}
	defer f.Close()

	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stdout, cfg.Log.Prefix, log.LstdFlags)
	}

	svc := audit.NewService(logger)
	scanReport, err := svc.Scan(f, audit.ScanOptions{
		FailFast:    !scanAll,
		MaxFindings: maxFindings,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if outputJSON {
		jsonData, err := json.MarshalIndent(scanReport, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonData))

		if !scanReport.Clean() {
			return fmt.Errorf("found %d validation problems", scanReport.Summary.TotalFindings)
		}
		return nil
	}

	if scanReport.Clean() {
		fmt.Printf("✓ %s is valid (%d hosts)\n", input, scanReport.HostsAccepted)
		return nil
	}

	fmt.Printf("✗ %s has validation problems:\n", input)
	for _, finding := range scanReport.Findings {
		fmt.Printf("  - Line %d: %s\n", finding.Line, finding.Message)
	}

	// Breakdowns only make sense after a whole-file scan.
	if scanAll {
		fmt.Println()
		fmt.Println("Findings by Rule:")
		for rule, count := range scanReport.Summary.ByRule {
			fmt.Printf("  %s: %d\n", rule, count)
		}
		fmt.Println()

		fmt.Println("Findings by Severity:")
		for severity, count := range scanReport.Summary.BySeverity {
			fmt.Printf("  %s: %d\n", severity, count)
		}
	}

	return fmt.Errorf("found %d validation problems", scanReport.Summary.TotalFindings)
}
