package imageutil

import (
	"math"

	"github.com/disintegration/imaging"
)

// Resize resizes an RGBA image to the specified dimensions using Lanczos
// resampling, the highest quality filter for downscaling photographs.
func Resize(img *RGBAImage, width, height int) *RGBAImage {
	resized := imaging.Resize(img.RGBA, width, height, imaging.Lanczos)
	return RGBAImageFromImage(resized)
}

// AspectRows computes the output row count for a target column count,
// preserving the source aspect ratio scaled by the cell aspect factor
// that compensates for terminal cells being taller than wide.
func AspectRows(srcWidth, srcHeight, targetWidth int, cellAspect float64) int {
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0
	}
	ratio := float64(srcHeight) / float64(srcWidth)
	return int(math.Round(float64(targetWidth) * ratio * cellAspect))
}

// ResizeToCells resizes an image to targetWidth columns and the
// aspect-corrected row count returned by AspectRows.
func ResizeToCells(img *RGBAImage, targetWidth int, cellAspect float64) *RGBAImage {
	rows := AspectRows(img.Width(), img.Height(), targetWidth, cellAspect)
	return Resize(img, targetWidth, rows)
}
