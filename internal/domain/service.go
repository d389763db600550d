package domain

import (
	"strings"
	"time"
)

// ServiceKind identifies one of the supported health-check targets.
type ServiceKind string

const (
	ServiceElasticsearch ServiceKind = "elasticsearch"
	ServiceKibana        ServiceKind = "kibana"
	ServiceLogstash      ServiceKind = "logstash"
)

// SupportedServices lists the recognized kinds in display order.
var SupportedServices = []ServiceKind{ServiceElasticsearch, ServiceKibana, ServiceLogstash}

// ParseServiceKind resolves a user-supplied service name. The second return
// value is false for anything outside the supported set.
func ParseServiceKind(name string) (ServiceKind, bool) {
	switch ServiceKind(strings.ToLower(strings.TrimSpace(name))) {
	case ServiceElasticsearch:
		return ServiceElasticsearch, true
	case ServiceKibana:
		return ServiceKibana, true
	case ServiceLogstash:
		return ServiceLogstash, true
	default:
		return "", false
	}
}

// Label returns the uppercase service name used in the status line.
func (k ServiceKind) Label() string {
	return strings.ToUpper(string(k))
}

// EndpointConfig carries everything needed to reach one service endpoint.
// It is built once per invocation and read-only for the duration of a check.
type EndpointConfig struct {
	BaseURL  string
	User     string
	Password string
	Timeout  time.Duration
	// Insecure disables TLS certificate verification for self-signed
	// stack deployments.
	Insecure bool
}

// CheckRequest is the dispatcher input for one invocation.
type CheckRequest struct {
	Service  string
	Endpoint EndpointConfig
}
