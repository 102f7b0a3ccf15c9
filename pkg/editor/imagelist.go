package editor

import (
	"context"
	"io"
	"strings"

	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

// MaxImageBytes is the client-side ceiling on a single image upload.
// The server enforces its own limit; rejecting here saves the round trip.
const MaxImageBytes = 5 << 20

// PhotoUploader pushes one image to the server and returns its public URL.
type PhotoUploader interface {
	UploadPhoto(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

// ImageList is an ordered gallery editor. Reordering is limited to
// adjacent swaps; there is no drag-and-drop.
type ImageList struct {
	urls      []string
	uploading bool
	onChange  func([]string)
}

// NewImageList builds a gallery editor over the initial URLs. onChange
// may be nil.
func NewImageList(urls []string, onChange func([]string)) *ImageList {
	return &ImageList{
		urls:     append([]string(nil), urls...),
		onChange: onChange,
	}
}

// URLs returns a copy of the gallery in display order.
func (l *ImageList) URLs() []string {
	return append([]string(nil), l.urls...)
}

// Uploading reports whether an upload started from this list is still
// in flight. Only the list's own add control is blocked by it.
func (l *ImageList) Uploading() bool {
	return l.uploading
}

// AppendURL adds an already-hosted image to the end of the gallery.
// Blank input is ignored.
func (l *ImageList) AppendURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	l.apply(append(append([]string(nil), l.urls...), url))
}

// AttachUpload validates and uploads a local image, then appends the
// URL the server assigned it. Oversized or non-image files are rejected
// before any network traffic.
func (l *ImageList) AttachUpload(ctx context.Context, uploader PhotoUploader, filename, contentType string, size int64, r io.Reader) error {
	if size > MaxImageBytes {
		return appErrors.Clone(appErrors.ErrPayloadTooLarge, "image must be smaller than 5MB")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return appErrors.Clone(appErrors.ErrUnsupportedMedia, "file must be an image")
	}

	l.uploading = true
	defer func() { l.uploading = false }()

	url, err := uploader.UploadPhoto(ctx, filename, contentType, size, r)
	if err != nil {
		return err
	}
	l.AppendURL(url)
	return nil
}

// MoveUp swaps the image with its predecessor. The first image stays put.
func (l *ImageList) MoveUp(index int) {
	if index <= 0 || index >= len(l.urls) {
		return
	}
	l.swap(index-1, index)
}

// MoveDown swaps the image with its successor. The last image stays put.
func (l *ImageList) MoveDown(index int) {
	if index < 0 || index >= len(l.urls)-1 {
		return
	}
	l.swap(index, index+1)
}

// Remove deletes the image at index. Out-of-range indexes are ignored.
func (l *ImageList) Remove(index int) {
	if index < 0 || index >= len(l.urls) {
		return
	}
	next := make([]string, 0, len(l.urls)-1)
	next = append(next, l.urls[:index]...)
	next = append(next, l.urls[index+1:]...)
	l.apply(next)
}

func (l *ImageList) swap(i, j int) {
	next := append([]string(nil), l.urls...)
	next[i], next[j] = next[j], next[i]
	l.apply(next)
}

func (l *ImageList) apply(next []string) {
	l.urls = next
	if l.onChange != nil {
		l.onChange(append([]string(nil), next...))
	}
}
