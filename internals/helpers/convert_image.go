package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// MaxImageBytes bounds post uploads.
const MaxImageBytes = 5 << 20

var ErrUnsupportedImage = NewAppError("Please upload only images.", http.StatusBadRequest)

type WebPOptions struct {
	MaxW    int     // batas lebar (keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // lossy quality, 0 = 80
}

var DefaultWebPOptions = WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dengan sniff MIME, fallback ke ekstensi
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, ErrUnsupportedImage
}

// ConvertToWebP reads an uploaded image, shrinks it to fit opts and
// re-encodes it as lossy WebP.
func ConvertToWebP(r io.Reader, filename string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrUnsupportedImage
	}
	if len(all) > MaxImageBytes {
		return nil, NewAppError("Image must be 5MB or smaller.", http.StatusBadRequest)
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		if _, ok := err.(*AppError); ok {
			return nil, err
		}
		return nil, WrapAppError(err, "Please upload only images.", http.StatusBadRequest)
	}

	b := img.Bounds()
	if (opts.MaxW > 0 && b.Dx() > opts.MaxW) || (opts.MaxH > 0 && b.Dy() > opts.MaxH) {
		w, h := opts.MaxW, opts.MaxH
		if w <= 0 {
			w = b.Dx()
		}
		if h <= 0 {
			h = b.Dy()
		}
		img = imaging.Fit(img, w, h, imaging.CatmullRom)
	}

	q := opts.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
