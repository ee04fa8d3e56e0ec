package assetstore

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var knownExtensions = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".gif":  ".gif",
	".webp": ".webp",
	".avif": ".avif",
}

// extensionFor picks the stored file extension. Sniffed content wins over
// the client's file name, which only helps when sniffing is inconclusive.
func extensionFor(data []byte, suggestedName string) string {
	sniffed := mimetype.Detect(data).Extension()
	if known, ok := knownExtensions[sniffed]; ok {
		return known
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(suggestedName)))
	if known, ok := knownExtensions[ext]; ok {
		return known
	}
	if sniffed == "" {
		return ".bin"
	}
	return sniffed
}

// shrinkImage downscales JPEG and PNG images whose longer side exceeds
// maxSide. Anything it cannot decode is returned unchanged; GIFs are left
// alone to keep animation frames.
func shrinkImage(data []byte, ext string, maxSide int) []byte {
	if maxSide <= 0 {
		return data
	}

	var format imaging.Format
	switch ext {
	case ".jpg":
		format = imaging.JPEG
	case ".png":
		format = imaging.PNG
	default:
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data
	}

	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return data
	}

	resized := imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return data
	}

	return buf.Bytes()
}
