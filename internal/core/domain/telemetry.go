package domain

// ActionStatus represents the lifecycle state of an action during a build.
type ActionStatus string

const (
	// ActionStatusPending indicates the action is waiting for dependencies or scheduling.
	ActionStatusPending ActionStatus = "pending"
	// ActionStatusRunning indicates the action is currently executing.
	ActionStatusRunning ActionStatus = "running"
	// ActionStatusCompleted indicates the action executed successfully.
	ActionStatusCompleted ActionStatus = "completed"
	// ActionStatusFailed indicates the action failed.
	ActionStatusFailed ActionStatus = "failed"
	// ActionStatusCached indicates the action was skipped because its rule key matched the cache.
	ActionStatusCached ActionStatus = "cached"
	// ActionStatusSkipped indicates the action never ran because a dependency failed.
	ActionStatusSkipped ActionStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached, Skipped).
func (s ActionStatus) IsTerminal() bool {
	switch s {
	case ActionStatusCompleted, ActionStatusFailed, ActionStatusCached, ActionStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
