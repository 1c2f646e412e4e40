package sitemeta

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrRemoteImage is returned when asked to probe an image that is not a local path.
var ErrRemoteImage = errors.New("sitemeta: image is not a local asset")

// ProbeImage reads the header of the local image ref (a siteLogo or
// socialBanner value such as "/static/images/logo.png") below staticDir and
// reports its format and dimensions. The pixel data is never decoded.
func ProbeImage(staticDir, ref string) (ImageInfo, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("sitemeta: parse image ref %q: %w", ref, err)
	}
	if u.IsAbs() || u.Host != "" {
		return ImageInfo{}, fmt.Errorf("%w: %s", ErrRemoteImage, ref)
	}

	// Cleaning against "/" keeps the result inside staticDir.
	rel := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if rel == "" {
		return ImageInfo{}, fmt.Errorf("sitemeta: image ref %q has no path", ref)
	}
	full := filepath.Join(staticDir, filepath.FromSlash(rel))

	f, err := os.Open(full)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("sitemeta: open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("sitemeta: decode image %s: %w", full, err)
	}
	return ImageInfo{
		Path:   full,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
