// Package exitcode provides standardized exit codes for fontctl
package exitcode

// Exit codes for fontctl CLI
const (
	Success         = 0
	GeneralError    = 1
	ConfigError     = 2
	ArgumentError   = 3
	FileSystemError = 4
	NetworkError    = 5
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case ConfigError:
		return "Configuration error"
	case ArgumentError:
		return "Argument error"
	case FileSystemError:
		return "File system error"
	case NetworkError:
		return "Network error"
	default:
		return "Unknown error"
	}
}
