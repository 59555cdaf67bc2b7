package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteText writes a rendered report to path, or to stdout when path is empty or "-".
// The document always ends with a newline.
func WriteText(path string, stdout io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if path == "" || path == "-" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
