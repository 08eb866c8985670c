// Package fleetsum computes summary statistics for a fleet of hosts.
//
// # Overview
//
// A fleet-state report is a line-oriented text file describing hosts. Each
// host is dedicated to one instance type (M1, M2, or M3) and has a fixed
// number of capacity slots, each either empty (0) or occupied (1):
//
//	<HostID>,<InstanceType>,<NumSlots>,<Slot1>,...,<SlotN>
//
// fleetsum validates every line strictly, aggregates per-instance-type
// occupancy counters, and writes a three-line statistics summary:
//
//	EMPTY: M1=2; M2=0; M3=1;
//	FULL: M1=1; M2=3; M3=0;
//	MOST FILLED: M1=5,2; M2=1,1; M3=0,0;
//
// EMPTY counts hosts with every slot free, FULL counts hosts with every
// slot occupied, and MOST FILLED reports, per type, how many hosts share
// the smallest positive number of empty slots together with that number.
// A type where no host has room (or with no hosts at all) reports 0,0.
//
// # Architecture
//
//	┌─────────────────┐
//	│  CLI Commands   │
//	│    (Cobra)      │
//	└────────┬────────┘
//	         │
//	┌────────▼────────┐      ┌─────────────────┐
//	│ Fleet Aggregator│◄─────┤  Record Parser  │
//	│ (internal/fleet)│      │ (internal/fleet)│
//	└────────┬────────┘      └─────────────────┘
//	         │
//	┌────────▼────────┐
//	│ Report Renderer │
//	│(internal/report)│
//	└─────────────────┘
//
// # Validation
//
// A report is processed all or nothing. The first invalid line aborts the
// run with an error of the form
//
//	Line <N>: <message>
//
// and no statistics file is written. Checked per line, in order: field
// count, host id syntax, instance type membership, slot count syntax, a
// minimum of one slot, slot list length, and the 0/1 range of every slot
// value. Duplicate host ids across the file are rejected at their second
// occurrence.
//
// The check command's --all mode relaxes this for diagnostics only: it
// scans the whole file, collects every finding, and never writes output.
//
// # Usage
//
// Summarize the default FleetState.txt into Statistics.txt:
//
//	fleetsum summarize
//
// Validate a report without writing anything:
//
//	fleetsum check --all state/FleetState.txt
//
// Inspect the per-type breakdown:
//
//	fleetsum stats --format json
//
// # Configuration
//
// Configuration can be provided via:
//   - YAML file (config.yaml, configs/config.yaml)
//   - Environment variables (FS_ prefix)
//   - .env file
//
// Example configuration:
//
//	input:
//	  fleet_state: FleetState.txt
//	output:
//	  statistics: Statistics.txt
//	  stdout: false
//	audit:
//	  max_findings: 0
//
// # Development
//
// Run tests:
//
//	go test ./...
//
// Build the binary:
//
//	go build -o fleetsum ./cmd/fleetsum
//
// # Technology Stack
//
//   - Go 1.25
//   - Cobra (CLI)
//   - Viper (configuration)
//   - go-playground/validator (config validation)
//
// # License
//
// fleetsum is open source software.
package fleetsum
