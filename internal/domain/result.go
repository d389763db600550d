package domain

// CheckResult is the single outcome of one check invocation. It is a value
// type and never mutated after construction.
type CheckResult struct {
	Level   StatusLevel
	Message string
	// Metric carries an optional numeric reading backing the verdict
	// (currently only the Logstash CPU percentage).
	Metric    float64
	HasMetric bool
}

// NewResult builds a result without a metric.
func NewResult(level StatusLevel, message string) CheckResult {
	return CheckResult{Level: level, Message: message}
}

// NewMetricResult builds a result carrying a numeric reading.
func NewMetricResult(level StatusLevel, message string, metric float64) CheckResult {
	return CheckResult{Level: level, Message: message, Metric: metric, HasMetric: true}
}

// Unknown builds the UNKNOWN result used whenever a check cannot produce a
// trustworthy verdict.
func Unknown(message string) CheckResult {
	return CheckResult{Level: StatusUnknown, Message: message}
}
