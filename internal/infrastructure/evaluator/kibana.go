package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stackwatch/checkstack/internal/domain"
)

const kibanaPath = "/api/status"

// kibanaResponse covers the status.overall.level path of /api/status.
type kibanaResponse struct {
	Status struct {
		Overall struct {
			Level string `json:"level"`
		} `json:"overall"`
	} `json:"status"`
}

// Kibana maps the overall status level reported by /api/status:
// available is OK, degraded is WARNING, critical is CRITICAL and
// unavailable is UNKNOWN.
type Kibana struct{}

func (Kibana) Kind() domain.ServiceKind { return domain.ServiceKibana }

func (Kibana) Path() string { return kibanaPath }

func (Kibana) Evaluate(body []byte) domain.CheckResult {
	var resp kibanaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Unknown("unexpected status response shape")
	}
	level := resp.Status.Overall.Level
	if level == "" {
		return domain.Unknown("status response is missing status.overall.level")
	}

	message := fmt.Sprintf("overall status is %s", level)
	switch strings.ToLower(level) {
	case "available":
		return domain.NewResult(domain.StatusOK, message)
	case "degraded":
		return domain.NewResult(domain.StatusWarning, message)
	case "critical":
		return domain.NewResult(domain.StatusCritical, message)
	case "unavailable":
		return domain.Unknown(message)
	default:
		return domain.Unknown(fmt.Sprintf("unrecognized overall status %q", level))
	}
}
