package imageutil

// AdjustContrast scales the distance of every channel from mid-gray (128)
// by the given factor. A factor of 1.0 leaves the image unchanged, values
// above 1.0 stretch the tonal range, values below compress it. Results are
// clamped to [0, 255].
func AdjustContrast(img *RGBAImage, factor float64) *RGBAImage {
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: clampUint8((float64(c.R)-128)*factor + 128),
				G: clampUint8((float64(c.G)-128)*factor + 128),
				B: clampUint8((float64(c.B)-128)*factor + 128),
			})
		}
	}

	return dst
}

// AdjustSharpness blends the image against a Gaussian-smoothed copy:
//
//	out = smooth + factor*(orig - smooth)
//
// A factor of 0 returns the smoothed image, 1.0 the original, and values
// above 1.0 exaggerate the detail the smoothing removed.
func AdjustSharpness(img *RGBAImage, factor float64) *RGBAImage {
	smooth := GaussianBlur(img)

	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := img.RGBAAt(x, y)
			s := smooth.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: clampUint8(float64(s.R) + factor*(float64(o.R)-float64(s.R))),
				G: clampUint8(float64(s.G) + factor*(float64(o.G)-float64(s.G))),
				B: clampUint8(float64(s.B) + factor*(float64(o.B)-float64(s.B))),
			})
		}
	}

	return dst
}
