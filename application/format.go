package application

import (
	"fmt"
	"strings"
)

const summaryDivider = "============================================================"

func onOffWord(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

func solenoidWord(state string) string {
	if state == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(state)
}

// FormatStatusSummary renders the block printed on auto_on and every few
// monitoring cycles. A nil snapshot renders a fetch-failure notice so the
// monitor can keep a uniform shape.
func FormatStatusSummary(s *StatusSnapshot) string {
	var b strings.Builder
	b.WriteString(summaryDivider + "\n")
	b.WriteString("SYSTEM STATUS SUMMARY\n")
	b.WriteString(summaryDivider + "\n")
	if s == nil {
		b.WriteString("Could not fetch system status\n")
	} else {
		fmt.Fprintf(&b, "Current Soil Moisture: %g%%\n", s.CurrentMoisture)
		fmt.Fprintf(&b, "Solenoid State: %s\n", solenoidWord(s.SolenoidState))
		fmt.Fprintf(&b, "Auto Irrigation: %s\n", onOffWord(s.AutoEnabled))
		fmt.Fprintf(&b, "Irrigation Thresholds: below %g%% & above %g%%\n", s.MinThreshold, s.MaxThreshold)
		fmt.Fprintf(&b, "Check Interval: %d seconds\n", s.CheckInterval)
	}
	b.WriteString(summaryDivider)
	return b.String()
}

// FormatStatus renders the one-shot `status` command output.
func FormatStatus(s *StatusSnapshot) string {
	var b strings.Builder
	b.WriteString("System Status:\n")
	fmt.Fprintf(&b, "  Solenoid State: %s\n", solenoidWord(s.SolenoidState))
	fmt.Fprintf(&b, "  Auto Irrigation: %s\n", onOffWord(s.AutoEnabled))
	fmt.Fprintf(&b, "  Irrigation Thresholds: %g%% - %g%%\n", s.MinThreshold, s.MaxThreshold)
	fmt.Fprintf(&b, "  Check Interval: %d seconds\n", s.CheckInterval)
	fmt.Fprintf(&b, "  Current Moisture: %g%%", s.CurrentMoisture)
	return b.String()
}

// FormatCycleReading is the one-line reading printed on ordinary
// monitoring cycles.
func FormatCycleReading(cycle int, s *StatusSnapshot) string {
	return fmt.Sprintf("Cycle %d: Moisture=%g%%, Solenoid=%s", cycle, s.CurrentMoisture, solenoidWord(s.SolenoidState))
}
