package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
)

const (
	maxWidth    = 1600
	webpQuality = 85
)

// ProcessImage normalizes an uploaded gallery photo: decode, downscale to
// the display width, re-encode as WebP. Returns the encoded bytes and the
// final dimensions.
func ProcessImage(data []byte) ([]byte, int, int, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, httperr.ErrBusiness("invalid_image")
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		nh := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, nh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		src = dst
		w, h = maxWidth, nh
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, 0, 0, err
	}

	return buf.Bytes(), w, h, nil
}
