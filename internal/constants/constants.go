package constants

const (
	AppName           = "tripcraft"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/tripcraft/tripcraft.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"
)
