package components

// DaySelectedMsg is emitted when a day is picked in the calendar.
type DaySelectedMsg struct {
	Date string // YYYY-MM-DD
}

// CloseOverlayMsg is emitted when an overlay asks to be dismissed.
type CloseOverlayMsg struct{}

// MusicStoppedMsg reports that the music player exited.
// Gen identifies the playback it belongs to; Err is nil on a requested stop.
type MusicStoppedMsg struct {
	Gen int
	Err error
}

// StatusMsg carries a status bar message from a command.
type StatusMsg struct {
	Text string
}

// ErrMsg carries an error from a command.
type ErrMsg struct {
	Err error
}
