package asciiart

import (
	"fmt"
	"image"

	"github.com/ad4mjulie/ascii-art/imageutil"
)

// Codec abstracts image decode and encode so the pipeline has no direct
// dependency on any specific image library or on the filesystem.
type Codec interface {
	// Decode reads and decodes the image at path.
	Decode(path string) (*imageutil.RGBAImage, error)

	// Encode writes img to path, choosing the format from the extension.
	Encode(img image.Image, path string) error
}

// FileCodec is the file-backed Codec used by the CLI. It understands
// PNG, JPEG, GIF and TIFF input and PNG/JPEG/GIF output.
type FileCodec struct{}

// Decode implements Codec.
func (FileCodec) Decode(path string) (*imageutil.RGBAImage, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// Encode implements Codec.
func (FileCodec) Encode(img image.Image, path string) error {
	return imageutil.SaveImage(img, path)
}
