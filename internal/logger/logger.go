package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/cronograma/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
}

// LogPath returns the rotating log file used for a config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	logFile := LogPath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	// stderr stays quiet unless debugging; the TUI owns the terminal otherwise
	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = newLogger(writer, level, cfg.Debug)
	return nil
}

// SetOutput replaces the global logger with one writing to w.
// Tests use it to capture what read failures report.
func SetOutput(w io.Writer) {
	Logger = newLogger(w, log.DebugLevel, false)
}

func newLogger(w io.Writer, level log.Level, caller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    caller,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
