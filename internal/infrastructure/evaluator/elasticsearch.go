package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stackwatch/checkstack/internal/domain"
)

const elasticsearchPath = "/_health_report"

// elasticsearchResponse is the slice of the health report the check reads.
type elasticsearchResponse struct {
	Status string `json:"status"`
}

// Elasticsearch maps the cluster health report status to a check level:
// green is OK, yellow is WARNING, red is CRITICAL.
type Elasticsearch struct{}

func (Elasticsearch) Kind() domain.ServiceKind { return domain.ServiceElasticsearch }

func (Elasticsearch) Path() string { return elasticsearchPath }

func (Elasticsearch) Evaluate(body []byte) domain.CheckResult {
	var resp elasticsearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Unknown("unexpected health report shape")
	}
	if resp.Status == "" {
		return domain.Unknown("health report is missing the status field")
	}

	message := fmt.Sprintf("cluster status is %s", resp.Status)
	switch strings.ToLower(resp.Status) {
	case "green":
		return domain.NewResult(domain.StatusOK, message)
	case "yellow":
		return domain.NewResult(domain.StatusWarning, message)
	case "red":
		return domain.NewResult(domain.StatusCritical, message)
	default:
		return domain.Unknown(fmt.Sprintf("unrecognized cluster status %q", resp.Status))
	}
}
