package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"gridcast/internal/core"
	"gridcast/internal/projection"
)

// WritePNG rasterises cmds and writes the image to path.
func WritePNG(path string, cmds []projection.DrawCommand, size core.Size) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, Rasterize(cmds, size)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
