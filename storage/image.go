package storage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Uploaded images are bounded to this width; smaller sources are left alone.
const maxImageWidth = 1280

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// webpQuality scales encode quality down as the source grows, so oversized
// uploads pay for their size in compression rather than storage.
func webpQuality(sourceSize int) float32 {
	switch {
	case sourceSize <= 512*1024:
		return 80
	case sourceSize <= 2*1024*1024:
		return 70
	default:
		return 60
	}
}

// CompressImage decodes an uploaded file, resizes it down to the width bound
// and re-encodes it as webp. It returns a collision-resistant filename
// ("<unix-ms>-<stem>.webp") together with the encoded bytes.
func CompressImage(originalName string, data []byte) (string, []byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality(len(data))}); err != nil {
		return "", nil, fmt.Errorf("failed to encode image: %w", err)
	}

	name := fmt.Sprintf("%d-%s.webp", time.Now().UnixMilli(), filenameStem(originalName))
	return name, buf.Bytes(), nil
}

func filenameStem(originalName string) string {
	base := filepath.Base(originalName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = unsafeFilenameChars.ReplaceAllString(stem, "_")
	stem = strings.Trim(stem, "_")
	if stem == "" {
		stem = "image"
	}
	return stem
}
