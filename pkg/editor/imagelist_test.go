package editor

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

type uploaderStub struct {
	url      string
	err      error
	filename string
	size     int64
}

func (u *uploaderStub) UploadPhoto(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	u.filename = filename
	u.size = size
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func TestImageListMoveBoundariesAreNoOps(t *testing.T) {
	l := NewImageList([]string{"a", "b", "c"}, nil)

	l.MoveUp(0)
	assert.Equal(t, []string{"a", "b", "c"}, l.URLs())

	l.MoveDown(2)
	assert.Equal(t, []string{"a", "b", "c"}, l.URLs())
}

func TestImageListMoveUpSwapsAdjacent(t *testing.T) {
	var last []string
	l := NewImageList([]string{"a", "b", "c"}, func(v []string) { last = v })

	l.MoveUp(1)
	assert.Equal(t, []string{"b", "a", "c"}, l.URLs())
	assert.Equal(t, []string{"b", "a", "c"}, last)
}

func TestImageListMoveDownSwapsAdjacent(t *testing.T) {
	l := NewImageList([]string{"a", "b", "c"}, nil)
	l.MoveDown(0)
	assert.Equal(t, []string{"b", "a", "c"}, l.URLs())
}

func TestImageListAppendURL(t *testing.T) {
	l := NewImageList(nil, nil)
	l.AppendURL("  /uploads/x.png  ")
	l.AppendURL("")
	l.AppendURL("   ")
	assert.Equal(t, []string{"/uploads/x.png"}, l.URLs())
}

func TestImageListRemove(t *testing.T) {
	l := NewImageList([]string{"a", "b", "c"}, nil)
	l.Remove(1)
	assert.Equal(t, []string{"a", "c"}, l.URLs())

	l.Remove(5)
	assert.Equal(t, []string{"a", "c"}, l.URLs())
}

func TestImageListAttachUploadAppendsServerURL(t *testing.T) {
	uploader := &uploaderStub{url: "/uploads/hero.jpg"}
	l := NewImageList([]string{"a"}, nil)

	err := l.AttachUpload(context.Background(), uploader, "hero.jpg", "image/jpeg", 1024, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "/uploads/hero.jpg"}, l.URLs())
	assert.Equal(t, "hero.jpg", uploader.filename)
	assert.False(t, l.Uploading())
}

func TestImageListAttachUploadRejectsOversized(t *testing.T) {
	uploader := &uploaderStub{url: "/uploads/hero.jpg"}
	l := NewImageList(nil, nil)

	err := l.AttachUpload(context.Background(), uploader, "hero.jpg", "image/jpeg", MaxImageBytes+1, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPayloadTooLarge.Code, appErrors.FromError(err).Code)
	assert.Zero(t, uploader.size, "oversized files must be rejected before upload")
	assert.Empty(t, l.URLs())
}

func TestImageListAttachUploadRejectsNonImage(t *testing.T) {
	uploader := &uploaderStub{url: "/uploads/doc.pdf"}
	l := NewImageList(nil, nil)

	err := l.AttachUpload(context.Background(), uploader, "doc.pdf", "application/pdf", 100, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedMedia.Code, appErrors.FromError(err).Code)
	assert.Empty(t, l.URLs())
}
