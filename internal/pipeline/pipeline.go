// Package pipeline orchestrates card exports: compose, encode, deliver.
// It serializes per-format export attempts so a slow rasterization can't be
// doubled by an impatient retry.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/Sabique-Islam/pixiefie/internal/card"
	"github.com/Sabique-Islam/pixiefie/internal/export"
	"github.com/Sabique-Islam/pixiefie/internal/logger"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

// copiedResetDelay is how long the clipboard confirmation stays visible.
const copiedResetDelay = 2 * time.Second

// Service drives the full export pipeline for one card session.
type Service struct {
	compositor *card.Compositor
	encoder    *export.Encoder
	log        *logger.Logger

	mu       sync.Mutex
	inflight map[export.Format]bool
	copied   bool

	resetDelay time.Duration
	copyText   func(string) error
}

// NewService constructs a Service around the shared compositor and encoder.
func NewService(compositor *card.Compositor, encoder *export.Encoder, log *logger.Logger) *Service {
	return &Service{
		compositor: compositor,
		encoder:    encoder,
		log:        log,
		inflight:   make(map[export.Format]bool),
		resetDelay: copiedResetDelay,
		copyText:   export.CopyText,
	}
}

// Export composes, encodes and saves the card in the given format. A second
// export in the same format while one is running fails with ErrBusy;
// exports in different formats proceed independently. The returned path is
// empty when there was nothing to export.
func (s *Service) Export(ctx context.Context, in card.Input, format export.Format, dir string) (string, error) {
	if err := s.acquire(format); err != nil {
		return "", err
	}
	defer s.release(format)

	doc, err := s.compositor.Compose(ctx, in)
	if err != nil {
		return "", err
	}
	if doc == "" {
		return "", nil
	}

	data, err := s.encoder.Encode(doc, format, s.background(in))
	if err != nil {
		return "", err
	}

	path, err := export.SaveFile(dir, s.username(in), format, data)
	if err != nil {
		return "", err
	}

	s.log.WithField("path", path).Info("card exported")
	return path, nil
}

// CopySVG composes the card and places the raw vector document on the
// clipboard, then shows a transient confirmation via Copied.
func (s *Service) CopySVG(ctx context.Context, in card.Input) error {
	if err := s.acquire(export.FormatSVG); err != nil {
		return err
	}
	defer s.release(export.FormatSVG)

	doc, err := s.compositor.Compose(ctx, in)
	if err != nil {
		return err
	}
	if doc == "" {
		return nil
	}

	if err := s.copyText(doc); err != nil {
		return err
	}

	s.markCopied()
	return nil
}

// Copied reports whether a clipboard copy confirmation is currently active.
func (s *Service) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copied
}

func (s *Service) acquire(format export.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[format] {
		return pixieerrors.ErrBusy
	}
	s.inflight[format] = true
	return nil
}

func (s *Service) release(format export.Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, format)
}

func (s *Service) markCopied() {
	s.mu.Lock()
	s.copied = true
	delay := s.resetDelay
	s.mu.Unlock()

	time.AfterFunc(delay, func() {
		s.mu.Lock()
		s.copied = false
		s.mu.Unlock()
	})
}

func (s *Service) username(in card.Input) string {
	if in.Profile == nil {
		return ""
	}
	return in.Profile.Username
}

func (s *Service) background(in card.Input) string {
	return in.Theme.EffectiveColors(in.Overrides).Background
}
