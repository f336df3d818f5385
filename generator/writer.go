package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/circegen/circegen/internal/fileutil"
)

// WriteFile writes the companion object to path followed by a newline.
// Missing parent directories are created. Symlinks are not followed.
func (r *GenerateResult) WriteFile(path string) error {
	cleaned := filepath.Clean(path)
	if err := fileutil.RejectSymlink(cleaned); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	dir := filepath.Dir(cleaned)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}

	if err := os.WriteFile(cleaned, []byte(r.Code+"\n"), fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file: %w", err)
	}
	return nil
}
