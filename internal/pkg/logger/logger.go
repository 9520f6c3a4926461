package logger

// Logger defines the logging interface.
//
// The first argument is the message; any remaining arguments are read as
// alternating key/value pairs, e.g. Info("order placed", "order_number", n).
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
