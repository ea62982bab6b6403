package card

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/Sabique-Islam/pixiefie/internal/logger"
	"github.com/Sabique-Islam/pixiefie/internal/profile"
)

// SessionSurface is the default Surface implementation backing one card
// session. The QR fragment is rendered once when the profile is mounted;
// the avatar is fetched only when an export asks for it, never eagerly.
type SessionSurface struct {
	fragment  Fragment
	avatarURL string
	client    *http.Client
	log       *logger.Logger
}

// NewSessionSurface mounts a card session for the profile. A profile
// without a link yields an empty QR fragment; the compositor substitutes
// its placeholder.
func NewSessionSurface(p *profile.Profile, log *logger.Logger) *SessionSurface {
	s := &SessionSurface{
		avatarURL: p.Avatar,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}

	fragment, err := EncodeQR(p.Link)
	if err != nil {
		// Missing QR is a defined fallback, not an export failure.
		log.Warn("qr encoding failed, card will use placeholder")
		return s
	}
	s.fragment = fragment
	return s
}

// QRFragment implements Surface.
func (s *SessionSurface) QRFragment() Fragment {
	return s.fragment
}

// AvatarData implements Surface. It fetches the avatar bytes, normalizes
// them to the card's avatar slot and encodes a PNG data URI.
func (s *SessionSurface) AvatarData(ctx context.Context) (string, error) {
	if s.avatarURL == "" {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.avatarURL, nil)
	if err != nil {
		return "", fmt.Errorf("building avatar request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching avatar: status %d", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decoding avatar: %w", err)
	}

	// Square fill-crop to the slot size so the circular clip never shows
	// letterboxing.
	img = imaging.Fill(img, AvatarSize, AvatarSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encoding avatar: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
