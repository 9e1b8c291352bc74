package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "visionboard"
	DefaultConfigPath = "~/.config/visionboard/visionboard.db"
	Version           = "v0.1.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ItemsSlot and ReflectionsSlot are the persisted key-value slot names.
	// They match the original storage keys so existing exports stay readable.
	ItemsSlot       = "vision-board-data"
	ReflectionsSlot = "vision-board-reflections"

	// Mood bounds for reflections
	MoodMin = 1
	MoodMax = 5

	// Session States
	StateDashboard SessionState = iota
	StateBoard
	StateAddItem
	StateReflect
	StateConfirmDelete
)

// MoodLabels maps a mood rating to its display label.
var MoodLabels = map[int]string{
	1: "Rough",
	2: "Okay",
	3: "Good",
	4: "Great",
	5: "Amazing",
}
