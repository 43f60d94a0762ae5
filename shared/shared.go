package shared

import "log/slog"

// Verbose flag
var Verbose bool = false

// Version of the monitor
const Version = "0.4.0"

func DebugPrint(msg string) {
	if Verbose {
		slog.Debug(msg)
	}
}
