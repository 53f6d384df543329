package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Info logs general information (blue)
func Info(message string, args ...interface{}) {
	color.Blue("[%s] %s", timestamp(), fmt.Sprintf(message, args...))
}

// Success logs a success (green)
func Success(message string, args ...interface{}) {
	color.Green("[%s] ✓ %s", timestamp(), fmt.Sprintf(message, args...))
}

// Warning logs a warning (yellow)
func Warning(message string, args ...interface{}) {
	color.Yellow("[%s] ⚠ %s", timestamp(), fmt.Sprintf(message, args...))
}

// Error logs an error (red)
func Error(message string, args ...interface{}) {
	color.Red("[%s] ✗ %s", timestamp(), fmt.Sprintf(message, args...))
}

// Debug logs a debug message (cyan) - development only
func Debug(message string, args ...interface{}) {
	color.Cyan("[%s] DEBUG: %s", timestamp(), fmt.Sprintf(message, args...))
}

// Request logs an HTTP request with its duration
func Request(method, path string, statusCode int, duration time.Duration) {
	var paint func(format string, a ...interface{})
	switch {
	case statusCode >= 200 && statusCode < 300:
		paint = color.Green
	case statusCode >= 300 && statusCode < 400:
		paint = color.Cyan
	case statusCode >= 400 && statusCode < 500:
		paint = color.Yellow
	default:
		paint = color.Red
	}

	durationStr := ""
	if duration < time.Millisecond {
		durationStr = fmt.Sprintf("%.0fµs", float64(duration.Microseconds()))
	} else if duration < time.Second {
		durationStr = fmt.Sprintf("%.0fms", float64(duration.Milliseconds()))
	} else {
		durationStr = fmt.Sprintf("%.2fs", duration.Seconds())
	}

	paint("[%s] %-6s %-50s [%d] (%s)", timestamp(), method, path, statusCode, durationStr)
}
