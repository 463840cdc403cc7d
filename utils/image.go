package utils

import (
	"github.com/disintegration/imaging"
)

// Profile photos are resized to at most this width before upload.
const maxPhotoWidth = 1280

// OptimizeImage opens an uploaded image, scales it down preserving aspect
// ratio and writes the result back to the same path. Images already below
// the limit are rewritten as-is (re-encoding still strips oversized
// metadata).
func OptimizeImage(path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	return imaging.Save(img, path, imaging.JPEGQuality(85))
}
