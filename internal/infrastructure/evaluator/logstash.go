package evaluator

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/stackwatch/checkstack/internal/domain"
)

const logstashPath = "/_node/stats/process"

// CPU thresholds in percent. The warning band is inclusive on both ends.
const (
	logstashCPUWarn = 70.0
	logstashCPUCrit = 85.0
)

// logstashResponse covers the process.cpu.percent path of the node stats.
type logstashResponse struct {
	Process struct {
		CPU struct {
			Percent *json.Number `json:"percent"`
		} `json:"cpu"`
	} `json:"process"`
}

// Logstash grades the node by process CPU usage: below 70% is OK, 70-85%
// is WARNING and above 85% is CRITICAL. The reading is carried as the
// result metric.
type Logstash struct{}

func (Logstash) Kind() domain.ServiceKind { return domain.ServiceLogstash }

func (Logstash) Path() string { return logstashPath }

func (Logstash) Evaluate(body []byte) domain.CheckResult {
	var resp logstashResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Unknown("unexpected node stats shape")
	}
	if resp.Process.CPU.Percent == nil {
		return domain.Unknown("node stats are missing process.cpu.percent")
	}
	cpu, err := resp.Process.CPU.Percent.Float64()
	if err != nil {
		return domain.Unknown(fmt.Sprintf("CPU percentage %q is not numeric", resp.Process.CPU.Percent.String()))
	}

	message := fmt.Sprintf("process CPU at %s%%", humanize.FtoaWithDigits(cpu, 1))
	switch {
	case cpu < logstashCPUWarn:
		return domain.NewMetricResult(domain.StatusOK, message, cpu)
	case cpu <= logstashCPUCrit:
		return domain.NewMetricResult(domain.StatusWarning, message, cpu)
	default:
		return domain.NewMetricResult(domain.StatusCritical, message, cpu)
	}
}
