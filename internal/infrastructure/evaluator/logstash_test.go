package evaluator

import (
	"fmt"
	"testing"

	"github.com/stackwatch/checkstack/internal/domain"
)

func logstashBody(percent string) string {
	return fmt.Sprintf(`{"process":{"cpu":{"percent":%s}}}`, percent)
}

func TestLogstashEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name      string
		percent   string
		wantLevel domain.StatusLevel
	}{
		{"well below warning", "12", domain.StatusOK},
		{"just below warning", "69.9", domain.StatusOK},
		{"warning lower bound inclusive", "70", domain.StatusWarning},
		{"inside warning band", "80", domain.StatusWarning},
		{"warning upper bound inclusive", "85", domain.StatusWarning},
		{"just above critical bound", "85.1", domain.StatusCritical},
		{"fully saturated", "100", domain.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Logstash{}.Evaluate([]byte(logstashBody(tt.percent)))
			if got.Level != tt.wantLevel {
				t.Fatalf("Evaluate(cpu=%s) level = %s, want %s", tt.percent, got.Level, tt.wantLevel)
			}
			if !got.HasMetric {
				t.Fatal("expected the CPU reading to be carried as the result metric")
			}
		})
	}
}

func TestLogstashMetricValue(t *testing.T) {
	got := Logstash{}.Evaluate([]byte(logstashBody("42.5")))
	if got.Metric != 42.5 {
		t.Fatalf("Metric = %v, want 42.5", got.Metric)
	}
}

func TestLogstashEvaluateBadData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-numeric percent", logstashBody(`"busy"`)},
		{"missing percent", `{"process":{"cpu":{}}}`},
		{"missing process", `{"jvm":{}}`},
		{"non-object body", `17`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Logstash{}.Evaluate([]byte(tt.body))
			if got.Level != domain.StatusUnknown {
				t.Fatalf("Evaluate(%s) level = %s, want UNKNOWN", tt.body, got.Level)
			}
			if got.HasMetric {
				t.Fatal("bad data must not carry a metric")
			}
		})
	}
}

func TestLogstashPath(t *testing.T) {
	if got := (Logstash{}).Path(); got != "/_node/stats/process" {
		t.Fatalf("Path() = %q", got)
	}
}
