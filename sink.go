package asciiart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ad4mjulie/ascii-art/imageutil"
)

// DefaultOutputDir is the directory auto-saved renders land in, relative
// to the working directory.
const DefaultOutputDir = "received"

// timestampLayout names saved files down to the second; same-second
// collisions are resolved with a numeric suffix in AutoSavePath.
const timestampLayout = "2006-01-02_15-04-05"

// Sink persists rendered art to a path. Both sinks are fed from the same
// Art; a failing sink never undoes terminal output that already happened.
type Sink interface {
	// Write persists the art to the given path.
	Write(art *Art, path string) error

	// Ext returns the file extension this sink produces, with dot.
	Ext() string
}

// TextSink writes the plain character grid, one line per row, without
// escape codes.
type TextSink struct{}

// Write implements Sink.
func (TextSink) Write(art *Art, path string) error {
	if err := os.WriteFile(path, []byte(art.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// Ext implements Sink.
func (TextSink) Ext() string { return ".txt" }

// RasterSink re-renders the character grid as a PNG raster image.
type RasterSink struct {
	Renderer *RasterRenderer
	Colored  bool
}

// Write implements Sink.
func (s RasterSink) Write(art *Art, path string) error {
	img := s.Renderer.Render(art, s.Colored)
	if err := imageutil.SavePNG(img, path); err != nil {
		return fmt.Errorf("failed to write raster output: %w", err)
	}
	return nil
}

// Ext implements Sink.
func (RasterSink) Ext() string { return ".png" }

// AutoSavePath builds a unique save path under dir from the source image
// filename and a timestamp precise to the second. When the candidate
// already exists (two runs within the same second), a numeric suffix is
// appended until a free name is found. The exists predicate is injected
// so the rule is testable with a fake clock and filesystem.
func AutoSavePath(dir, imagePath, ext string, now time.Time, exists func(string) bool) string {
	base := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	stamp := now.Format(timestampLayout)

	candidate := filepath.Join(dir, fmt.Sprintf("%s_%s%s", base, stamp, ext))
	for n := 1; exists(candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%s_%d%s", base, stamp, n, ext))
	}
	return candidate
}

// SaveAuto writes the art through the sink to a collision-free path under
// dir, creating dir if needed. It returns the path written.
func SaveAuto(art *Art, sink Sink, dir, imagePath string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := AutoSavePath(dir, imagePath, sink.Ext(), time.Now(), fileExists)
	if err := sink.Write(art, path); err != nil {
		return "", err
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
