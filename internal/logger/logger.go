// Package logger provides verbose logging for the fgdc2sb CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users understand how a record was mapped.
//
// Messages are written through go.uber.org/zap with a console encoder
// that emits one "[LEVEL] message" line per call.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	sink    = zapcore.Lock(zapcore.AddSync(os.Stderr))
	log     = zap.NewNop()
	plain   = zap.NewNop()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sink = zapcore.Lock(zapcore.AddSync(w))
	rebuild()
}

// L returns the structured logger. It discards everything unless
// verbose mode is enabled.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	L().Debug(fmt.Sprintf(format, args...))
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	p := plain
	mu.RUnlock()
	p.Info("\n=== " + name + " ===")
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	L().Warn(fmt.Sprintf(format, args...))
}

// rebuild replaces the loggers after a state change (caller must hold lock).
func rebuild() {
	if !verbose {
		log = zap.NewNop()
		plain = zap.NewNop()
		return
	}

	cfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	log = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), sink, zapcore.DebugLevel))

	sectionCfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}
	plain = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(sectionCfg), sink, zapcore.DebugLevel))
}

// bracketLevelEncoder renders levels as "[DEBUG]", "[INFO]", "[WARN]".
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}
