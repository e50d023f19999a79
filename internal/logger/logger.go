// Package logger provides centralized logging for AssetTracker.
// Logs go to stderr or a file and never mix with the interactive output.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

// logOutput is where Logger writes; component loggers share it.
var logOutput io.Writer = os.Stderr

func init() {
	Logger = log.New(logOutput)

	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets up the logger from the CLI flag or the ASSETTRACKER_LOG_LEVEL
// environment variable (flag wins). An empty logFile keeps stderr.
func Configure(logLevel string, logFile string) error {
	level := logLevel
	if level == "" {
		level = os.Getenv("ASSETTRACKER_LOG_LEVEL")
	}

	var output io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		output = file
	}

	logOutput = output
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	if logFile != "" {
		Logger.SetReportTimestamp(true)
		Logger.SetTimeFormat(time.DateTime)
	}
	Logger.SetLevel(parseLogLevel(level))

	return nil
}

// parseLogLevel converts string to log level. Unknown or empty values mean warn,
// which keeps the interactive screen free of routine log lines.
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs command dispatch details for debugging.
func CommandExecution(command string, args []string) {
	Debug("Executing command", "command", command, "args", args)
}

// RepositoryOperation logs storage operations for debugging.
func RepositoryOperation(repository string, operation string, details ...interface{}) {
	Debug("Repository operation", "repository", repository, "operation", operation, "details", details)
}

// NewStyledLogger creates a new logger with custom styles and prefix for component-specific logging.
// The prefix names the component (e.g., "Shell", "Editor").
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = levelBadge("DEBUG", "240") // Gray
	styles.Levels[log.InfoLevel] = levelBadge("INFO", "33")    // Blue
	styles.Levels[log.WarnLevel] = levelBadge("WARN", "214")   // Orange
	styles.Levels[log.ErrorLevel] = levelBadge("ERROR", "196") // Red
	styles.Levels[log.FatalLevel] = levelBadge("FATAL", "88")  // Dark red

	// Custom key styling for common component keys
	styles.Keys["asset"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))   // Purple
	styles.Keys["input"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))   // Blue
	styles.Keys["depth"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))  // Orange
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))  // Red
	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46")) // Green
	styles.Keys["session"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51")) // Cyan

	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(logOutput, log.Options{
		Prefix: prefix + " ",
	})

	// Apply custom styles
	componentLogger.SetStyles(styles)

	// Match the global logger's level
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}

// levelBadge renders a level name as white text on a colored background.
func levelBadge(name, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(name).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}
