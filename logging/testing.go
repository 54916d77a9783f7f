package logging

// NewTestLogger creates a logger suitable for unit tests, console encoded
// and verbose so failures carry context.
func NewTestLogger() *Logger {
	return NewLoggerFromEnv("dev")
}
