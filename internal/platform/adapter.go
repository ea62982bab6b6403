package platform

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// Adapter fetches a normalized profile from one platform. Implementations
// translate transport failures into human-readable FetchErrors; the caller
// never retries.
type Adapter interface {
	Platform() profile.Platform
	Fetch(ctx context.Context, username string) (*profile.Profile, error)
}

// Service dispatches profile lookups to the registered platform adapters.
type Service struct {
	adapters map[profile.Platform]Adapter
	log      *logger.Logger
}

// NewService wires the five built-in adapters over a shared HTTP client.
func NewService(log *logger.Logger) *Service {
	client := &http.Client{Timeout: 15 * time.Second}

	s := &Service{
		adapters: make(map[profile.Platform]Adapter),
		log:      log,
	}
	for _, a := range []Adapter{
		NewGitHubAdapter(client),
		NewRedditAdapter(client),
		NewInstagramAdapter(),
		NewXAdapter(client),
		NewLinkedInAdapter(),
	} {
		s.adapters[a.Platform()] = a
	}
	return s
}

// Adapter returns the adapter registered for a platform.
func (s *Service) Adapter(p profile.Platform) (Adapter, bool) {
	a, ok := s.adapters[p]
	return a, ok
}

// Fetch resolves the user input (bare handle or profile URL) and fetches the
// profile from the matching platform.
func (s *Service) Fetch(ctx context.Context, input string) (*profile.Profile, error) {
	p, username, err := Resolve(input)
	if err != nil {
		return nil, err
	}

	adapter, ok := s.adapters[p]
	if !ok {
		return nil, pixieerrors.NewFetchError(p.String(), username, "platform not supported", nil)
	}

	s.log.WithField("platform", p.String()).Debug("fetching profile")

	prof, err := adapter.Fetch(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

var githubHandlePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Resolve maps user input to a platform and username. Bare handles (no dot,
// no slash) are treated as GitHub usernames; everything else must be a
// recognizable profile URL. twitter.com and x.com both resolve to "x".
func Resolve(input string) (profile.Platform, string, error) {
	raw := strings.TrimSpace(input)
	lowered := strings.ToLower(raw)
	if raw == "" {
		return "", "", pixieerrors.NewValidationError("input", "profile handle or URL is required", nil)
	}

	if strings.Contains(lowered, "github.com") || (!strings.Contains(lowered, ".") && !strings.Contains(lowered, "/")) {
		username := strings.TrimPrefix(raw, "@")
		if strings.Contains(lowered, "github.com") {
			username = segmentAfter(raw, "github.com/")
			if username == "" {
				return "", "", pixieerrors.NewValidationError("input", "invalid GitHub URL", nil)
			}
		}
		if !githubHandlePattern.MatchString(username) {
			return "", "", pixieerrors.NewValidationError("input", "invalid GitHub username format", nil)
		}
		return profile.PlatformGitHub, username, nil
	}

	if strings.Contains(lowered, "reddit.com") {
		username := segmentAfter(raw, "/u/")
		if username == "" {
			username = segmentAfter(raw, "/user/")
		}
		if username == "" {
			return "", "", pixieerrors.NewValidationError("input", "invalid Reddit URL, expected /u/ or /user/", nil)
		}
		return profile.PlatformReddit, username, nil
	}

	if strings.Contains(lowered, "instagram.com") {
		username := strings.TrimPrefix(segmentAfter(raw, "instagram.com/"), "@")
		if username == "" {
			return "", "", pixieerrors.NewValidationError("input", "invalid Instagram URL", nil)
		}
		return profile.PlatformInstagram, username, nil
	}

	if strings.Contains(lowered, "twitter.com") || strings.Contains(lowered, "x.com") {
		parts := strings.Split(strings.TrimRight(raw, "/"), "/")
		username := strings.TrimPrefix(parts[len(parts)-1], "@")
		if username == "" || strings.Contains(username, ".") {
			return "", "", pixieerrors.NewValidationError("input", "invalid Twitter/X URL", nil)
		}
		return profile.PlatformX, username, nil
	}

	if strings.Contains(lowered, "linkedin.com/in/") {
		username := segmentAfter(raw, "linkedin.com/in/")
		if username == "" {
			return "", "", pixieerrors.NewValidationError("input", "invalid LinkedIn URL", nil)
		}
		return profile.PlatformLinkedIn, username, nil
	}

	return "", "", pixieerrors.NewValidationError("input",
		"unsupported platform, use a GitHub, Reddit, Instagram, Twitter/X or LinkedIn profile", nil)
}

// segmentAfter returns the first path segment following marker, stripped of
// query string noise.
func segmentAfter(s, marker string) string {
	idx := strings.Index(strings.ToLower(s), strings.ToLower(marker))
	if idx < 0 {
		return ""
	}
	rest := s[idx+len(marker):]
	if cut := strings.IndexAny(rest, "/?#"); cut >= 0 {
		rest = rest[:cut]
	}
	return strings.TrimSpace(rest)
}
