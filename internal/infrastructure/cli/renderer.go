package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/stackwatch/checkstack/internal/domain"
)

// RenderResult formats the single status line consumed by the scheduler:
//
//	<SERVICE> <LEVEL> - <message> | <perfdata>
//
// Perfdata always carries the status code; the metric is appended when the
// evaluator produced one.
func RenderResult(service string, result domain.CheckResult) string {
	label := strings.ToUpper(strings.TrimSpace(service))
	if label == "" {
		label = "CHECK"
	}

	line := fmt.Sprintf("%s %s - %s | service_status=%d",
		label, result.Level, result.Message, result.Level.ExitCode())
	if result.HasMetric {
		line += fmt.Sprintf(" cpu_percent=%s%%", humanize.FtoaWithDigits(result.Metric, 1))
	}
	return line
}
