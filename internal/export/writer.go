package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// Filename builds the conventional output name for a card export.
func Filename(username string, format Format) string {
	name := strings.TrimSpace(username)
	if name == "" {
		name = "profile"
	}
	return fmt.Sprintf("%s-profile-card.%s", name, format.Extension())
}

// SaveFile writes data to dir under the conventional card filename and
// returns the written path.
func SaveFile(dir, username string, format Format, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(username, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// CopyText places text on the system clipboard.
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
