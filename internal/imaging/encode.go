// Package imaging turns an uploaded photo into the opaque encoded blob the
// event store persists.  The pipeline is decode -> bounded resize -> WebP,
// and it is strictly best effort: when any step fails the caller proceeds
// without a photo, so a broken upload can never block event creation.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// maxDimension bounds the longer photo edge.  Listing cards never render
// larger than this, so anything bigger only bloats the row.
const maxDimension = 1280

// quality is the lossy WebP quality used for photos.
const quality = 85

// dataURLPrefix lets the stored blob drop straight into an <img> src.
const dataURLPrefix = "data:image/webp;base64,"

// EncodePhoto reads an uploaded image and returns it as a WebP data URL
// string.  The empty string means "no photo": it is returned for a nil
// reader and for any decode, resize or encode failure.
func EncodePhoto(r io.Reader) string {
	if r == nil {
		return ""
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return ""
	}
	// Fit preserves aspect ratio and never upscales.
	src = imaging.Fit(src, maxDimension, maxDimension, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, src, &webp.Options{Lossless: false, Quality: quality}); err != nil {
		return ""
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}
