package iface

// Logger is the printf-style logger every command writes through. Rendered
// configuration goes to the command writer, never to a Logger.
type Logger interface {
	Title(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}
