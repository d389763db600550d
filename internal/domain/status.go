package domain

// StatusLevel is a Nagios-style check severity. The integer value doubles
// as the process exit code consumed by the scheduling monitor.
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the uppercase label used in the rendered status line.
func (s StatusLevel) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the level to its fixed process exit code (0,1,2,3).
func (s StatusLevel) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}

// Worse reports whether s is more severe than other.
// Severity order: OK < WARNING < CRITICAL < UNKNOWN.
func (s StatusLevel) Worse(other StatusLevel) bool {
	return s > other
}

// WorstOf combines sub-check levels, returning the most severe.
// An empty input yields UNKNOWN.
func WorstOf(levels ...StatusLevel) StatusLevel {
	if len(levels) == 0 {
		return StatusUnknown
	}
	worst := levels[0]
	for _, l := range levels[1:] {
		if l.Worse(worst) {
			worst = l
		}
	}
	return worst
}
