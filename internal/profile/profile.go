package profile

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// Platform identifies a supported social platform. The canonical identifier
// for Twitter/X is "x"; "twitter" is accepted as input and normalized.
type Platform string

const (
	PlatformGitHub    Platform = "github"
	PlatformReddit    Platform = "reddit"
	PlatformInstagram Platform = "instagram"
	PlatformX         Platform = "x"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformGitHub, PlatformReddit, PlatformInstagram, PlatformX, PlatformLinkedIn}
}

// ParsePlatform normalizes a platform identifier. Legacy "twitter" maps to
// the canonical "x".
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformGitHub:
		return PlatformGitHub, true
	case PlatformReddit:
		return PlatformReddit, true
	case PlatformInstagram:
		return PlatformInstagram, true
	case PlatformX, Platform("twitter"):
		return PlatformX, true
	case PlatformLinkedIn:
		return PlatformLinkedIn, true
	}
	return "", false
}

func (p Platform) String() string {
	return string(p)
}

// BadgeLabel returns the text rendered inside the card's platform pill.
func (p Platform) BadgeLabel() string {
	return strings.ToUpper(string(p)) + " PROFILE"
}

// Profile is the normalized record every card renderer consumes. Username
// and Platform are always present; everything else has a render fallback.
type Profile struct {
	Platform Platform `json:"platform" validate:"required,platform"`
	Username string   `json:"username" validate:"required"`
	Name     string   `json:"name,omitempty"`
	Avatar   string   `json:"avatar,omitempty" validate:"omitempty,url"`
	Bio      string   `json:"bio,omitempty"`
	Link     string   `json:"link,omitempty" validate:"omitempty,url"`
}

// DisplayName resolves the card's headline text: name, then username, then
// the literal "Unknown".
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Username != "" {
		return p.Username
	}
	return "Unknown"
}

// Initial returns the uppercased first character used by the avatar
// placeholder, preferring the display name over the username.
func (p *Profile) Initial() string {
	source := p.Name
	if source == "" {
		source = p.Username
	}
	if source == "" {
		source = "U"
	}
	runes := []rune(source)
	return strings.ToUpper(string(runes[0]))
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, ok := ParsePlatform(fl.Field().String())
			return ok
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks the profile invariants: username present, platform one of
// the supported five, URLs well formed when set.
func (p *Profile) Validate() error {
	if p == nil {
		return pixieerrors.NewValidationError("profile", "profile is nil", nil)
	}
	if err := validatorInstance().Struct(p); err != nil {
		return pixieerrors.NewValidationError("profile", err.Error(), err)
	}
	return nil
}
