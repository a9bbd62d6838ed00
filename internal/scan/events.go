package scan

// Level indicates the severity/type of a scan progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event is a progress update emitted while scanning. Per-file problems
// are reported through events and skipped, never surfaced as errors:
// only whole-batch preconditions fail a scan.
type Event struct {
	Message string
	Level   Level
}
