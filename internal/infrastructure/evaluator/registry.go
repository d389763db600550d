// Package evaluator holds the per-service health interpreters. Each
// evaluator knows its request path and how to grade the service-specific
// response shape; none of them touch the network.
package evaluator

import (
	"github.com/stackwatch/checkstack/internal/domain"
	"github.com/stackwatch/checkstack/internal/ports"
)

// Registry returns the closed dispatch table mapping each supported service
// kind to its evaluator.
func Registry() map[domain.ServiceKind]ports.Evaluator {
	return map[domain.ServiceKind]ports.Evaluator{
		domain.ServiceElasticsearch: Elasticsearch{},
		domain.ServiceKibana:        Kibana{},
		domain.ServiceLogstash:      Logstash{},
	}
}
