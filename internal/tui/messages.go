package tui

import (
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
)

// ProfileFetchedMsg carries a freshly fetched profile into the studio.
type ProfileFetchedMsg struct {
	Profile *profile.Profile
}

// FetchErrorMsg reports a failed profile fetch.
type FetchErrorMsg struct {
	Err error
}

// ExportDoneMsg reports a finished export and where it landed.
type ExportDoneMsg struct {
	Format export.Format
	Path   string
}

// ExportErrorMsg reports a failed export.
type ExportErrorMsg struct {
	Format export.Format
	Err    error
}

// CopyDoneMsg confirms the vector document reached the clipboard.
type CopyDoneMsg struct{}

// CopyErrorMsg reports a failed clipboard copy.
type CopyErrorMsg struct {
	Err error
}

// CopiedClearMsg dismisses the transient clipboard confirmation.
type CopiedClearMsg struct{}
