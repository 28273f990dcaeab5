package service

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
)

// squareCrop center-crops the image to a 1:1 square whose side is the
// smaller of the two dimensions, re-encoded in the source format. When the
// payload cannot be decoded the original bytes are returned unmodified:
// avatar processing degrades silently rather than failing the request.
func squareCrop(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[AccountService] avatar not decodable, uploading as-is: %v", err)
		return data
	}

	b := img.Bounds()
	if b.Dx() == b.Dy() {
		return data
	}
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2

	cropped := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(cropped, cropped.Bounds(), img, image.Pt(x0, y0), draw.Src)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, cropped)
	default:
		err = jpeg.Encode(&buf, cropped, nil)
	}
	if err != nil {
		log.Printf("[AccountService] avatar re-encode failed, uploading as-is: %v", err)
		return data
	}
	return buf.Bytes()
}
