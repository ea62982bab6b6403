package platform

import (
	"context"
	"strings"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
)

// Instagram and LinkedIn expose no public unauthenticated profile API, so
// their adapters produce link-only profiles: username plus canonical URL,
// with the card falling back to placeholder visuals for everything else.

// InstagramAdapter builds link-only Instagram profiles.
type InstagramAdapter struct{}

// NewInstagramAdapter constructs an InstagramAdapter.
func NewInstagramAdapter() *InstagramAdapter {
	return &InstagramAdapter{}
}

// Platform implements Adapter.
func (a *InstagramAdapter) Platform() profile.Platform {
	return profile.PlatformInstagram
}

// Fetch implements Adapter.
func (a *InstagramAdapter) Fetch(_ context.Context, username string) (*profile.Profile, error) {
	username = strings.TrimPrefix(username, "@")
	return &profile.Profile{
		Platform: profile.PlatformInstagram,
		Username: username,
		Link:     "https://instagram.com/" + username,
	}, nil
}

// LinkedInAdapter builds link-only LinkedIn profiles.
type LinkedInAdapter struct{}

// NewLinkedInAdapter constructs a LinkedInAdapter.
func NewLinkedInAdapter() *LinkedInAdapter {
	return &LinkedInAdapter{}
}

// Platform implements Adapter.
func (a *LinkedInAdapter) Platform() profile.Platform {
	return profile.PlatformLinkedIn
}

// Fetch implements Adapter.
func (a *LinkedInAdapter) Fetch(_ context.Context, username string) (*profile.Profile, error) {
	return &profile.Profile{
		Platform: profile.PlatformLinkedIn,
		Username: username,
		Link:     "https://linkedin.com/in/" + username,
	}, nil
}
