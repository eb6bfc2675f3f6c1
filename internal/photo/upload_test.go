package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

type recorder struct {
	events []types.ProfilePictureUpdated
}

func (r *recorder) Dispatch(_ context.Context, event types.ProfilePictureUpdated) error {
	r.events = append(r.events, event)
	return nil
}

func TestUpload_AcceptsPNG(t *testing.T) {
	rec := &recorder{}
	u := NewUploader(rec, 0)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return fixed }

	event, err := u.Upload(context.Background(), "me.png", "image/png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	assert.Equal(t, *event, rec.events[0])
	assert.Equal(t, types.ProfilePictureField, event.Field)
	assert.Equal(t, "image/png", event.MimeType)
	assert.Equal(t, int64(len(pngHeader)), event.SizeBytes)
	assert.Equal(t, fixed, event.OccurredAt)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), event.Value)
}

func TestUpload_AcceptsJPGAlias(t *testing.T) {
	u := NewUploader(nil, 0)

	event, err := u.Upload(context.Background(), "me.jpg", "image/jpg", bytes.NewReader(jpegHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(event.Value, "data:image/jpeg;base64,"))
}

func TestUpload_RejectsDeclaredType(t *testing.T) {
	rec := &recorder{}
	u := NewUploader(rec, 0)

	_, err := u.Upload(context.Background(), "me.gif", "image/gif", bytes.NewReader([]byte("GIF89a")))
	require.Error(t, err)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, ReasonUnsupportedType, rejected.Reason)
	assert.Equal(t, "Please upload a valid image file (JPEG, PNG)", rejected.Message)
	assert.Empty(t, rec.events)
}

func TestUpload_RejectsSpoofedContent(t *testing.T) {
	rec := &recorder{}
	u := NewUploader(rec, 0)

	_, err := u.Upload(context.Background(), "me.png", "image/png", strings.NewReader("<html>not an image</html>"))

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, ReasonUnsupportedType, rejected.Reason)
	assert.Empty(t, rec.events)
}

func TestUpload_RejectsTooLarge(t *testing.T) {
	rec := &recorder{}
	u := NewUploader(rec, 0)
	big := append(append([]byte{}, pngHeader...), make([]byte, MaxBytes)...)

	_, err := u.Upload(context.Background(), "big.png", "image/png", bytes.NewReader(big))

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, ReasonTooLarge, rejected.Reason)
	assert.Equal(t, "File size must be less than 2MB", rejected.Message)
	assert.Empty(t, rec.events)
}

func TestUpload_AcceptsExactlyMaxBytes(t *testing.T) {
	rec := &recorder{}
	u := NewUploader(rec, 0)
	data := make([]byte, MaxBytes)
	copy(data, pngHeader)

	event, err := u.Upload(context.Background(), "big.png", "image/png", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(MaxBytes), event.SizeBytes)
	assert.Equal(t, "image/png", event.MimeType)
	assert.Len(t, rec.events, 1)
}

func TestUpload_ExactlyAtLimit(t *testing.T) {
	u := NewUploader(nil, int64(len(pngHeader)))

	_, err := u.Upload(context.Background(), "me.png", "image/png", bytes.NewReader(pngHeader))
	assert.NoError(t, err)
}

func TestUpload_RejectsEmpty(t *testing.T) {
	u := NewUploader(nil, 0)

	_, err := u.Upload(context.Background(), "me.png", "image/png", bytes.NewReader(nil))

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, ReasonEmpty, rejected.Reason)
}

func TestUpload_DeclaredTypeWithParameters(t *testing.T) {
	u := NewUploader(nil, 0)

	_, err := u.Upload(context.Background(), "me.png", " IMAGE/PNG; charset=binary", bytes.NewReader(pngHeader))
	assert.NoError(t, err)
}

func TestUpload_DispatchFailure(t *testing.T) {
	boom := errors.New("store offline")
	u := NewUploader(DispatcherFunc(func(context.Context, types.ProfilePictureUpdated) error {
		return boom
	}), 0)

	_, err := u.Upload(context.Background(), "me.png", "image/png", bytes.NewReader(pngHeader))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "2MB", humanSize(2<<20))
	assert.Equal(t, "512KB", humanSize(512<<10))
	assert.Equal(t, "1000 bytes", humanSize(1000))
}
