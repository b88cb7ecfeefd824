package inkwell

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

const (
	uploadsSubdir = "uploads"
	maxUploadSize = 10 << 20 // 10MB
	thumbWidth    = 480
	thumbQuality  = 80
)

// SavedAsset describes a stored upload.
type SavedAsset struct {
	URL      string // public path, e.g. /uploads/1724980000000_cover.jpg
	ThumbURL string // empty when no thumbnail could be generated
}

// saveAsset writes the uploaded file under staticDir/uploads with a
// timestamp-prefixed, slugified filename so repeat uploads never collide.
// A JPEG thumbnail is generated alongside when the file decodes as an
// image; failures there degrade to the original only.
func (a *App) saveAsset(file *multipart.FileHeader) (SavedAsset, error) {
	src, err := file.Open()
	if err != nil {
		return SavedAsset{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return SavedAsset{}, fmt.Errorf("read upload: %w", err)
	}

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return SavedAsset{}, fmt.Errorf("create uploads dir: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeFilename(file.Filename))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return SavedAsset{}, fmt.Errorf("write image: %w", err)
	}

	asset := SavedAsset{URL: "/" + uploadsSubdir + "/" + name}
	if thumb, err := makeThumbnail(data); err == nil {
		thumbName := "thumb_" + strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
		if err := os.WriteFile(filepath.Join(dir, thumbName), thumb, 0o644); err == nil {
			asset.ThumbURL = "/" + uploadsSubdir + "/" + thumbName
		}
	}
	return asset, nil
}

// makeThumbnail decodes src and scales it down to thumbWidth, re-encoded
// as JPEG. Images already narrower than thumbWidth are re-encoded as-is.
func makeThumbnail(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > thumbWidth {
		newH := h * thumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeFilename slugifies the base name and keeps a lowercased extension.
func sanitizeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := Slugify(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	if base == "" {
		base = "upload"
	}
	return base + ext
}
