package logger

// NopLogger discards everything. Handy for tests and as a fallback sink.
type NopLogger struct{}

// Nop returns a logger that discards all output.
func Nop() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(string, map[string]interface{})       {}
func (*NopLogger) Info(string, map[string]interface{})        {}
func (*NopLogger) Warn(string, map[string]interface{})        {}
func (*NopLogger) Error(string, error, map[string]interface{}) {}
