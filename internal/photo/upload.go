package photo

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// MaxBytes is the largest accepted upload (2 MiB).
const MaxBytes int64 = 2 << 20

// AllowedTypes are the accepted declared MIME types.
var AllowedTypes = []string{"image/jpeg", "image/jpg", "image/png"}

// Dispatcher publishes accepted uploads to whoever owns the document.
type Dispatcher interface {
	Dispatch(ctx context.Context, event types.ProfilePictureUpdated) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, event types.ProfilePictureUpdated) error

// Dispatch calls f.
func (f DispatcherFunc) Dispatch(ctx context.Context, event types.ProfilePictureUpdated) error {
	return f(ctx, event)
}

// Uploader validates photos, encodes them as data URIs and dispatches the result.
type Uploader struct {
	maxBytes   int64
	dispatcher Dispatcher
	now        func() time.Time
}

// NewUploader creates an Uploader. A non-positive maxBytes means MaxBytes.
func NewUploader(dispatcher Dispatcher, maxBytes int64) *Uploader {
	if maxBytes <= 0 {
		maxBytes = MaxBytes
	}
	return &Uploader{
		maxBytes:   maxBytes,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// MaxBytes returns the size limit enforced by u.
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Upload reads at most the size limit from r, checks the declared and the
// sniffed content type, and dispatches a ProfilePictureUpdated event.
// Rejected files return *RejectedError and dispatch nothing.
func (u *Uploader) Upload(ctx context.Context, filename, declaredType string, r io.Reader) (*types.ProfilePictureUpdated, error) {
	declaredType = strings.ToLower(strings.TrimSpace(declaredType))
	if i := strings.IndexByte(declaredType, ';'); i >= 0 {
		declaredType = strings.TrimSpace(declaredType[:i])
	}

	req := types.PhotoUploadRequest{Filename: filename, ContentType: declaredType}
	if err := req.Validate(); err != nil {
		return nil, &RejectedError{
			Reason:  ReasonUnsupportedType,
			Message: "Please upload a valid image file (JPEG, PNG)",
			Cause:   err,
		}
	}

	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, NewTooLargeError(u.maxBytes, nil)
	}
	if len(data) == 0 {
		return nil, &RejectedError{Reason: ReasonEmpty, Message: "The selected file is empty"}
	}

	detected := mimetype.Detect(data)
	if !detected.Is("image/jpeg") && !detected.Is("image/png") {
		return nil, &RejectedError{
			Reason:  ReasonUnsupportedType,
			Message: "Please upload a valid image file (JPEG, PNG)",
			Cause:   fmt.Errorf("content looks like %s", detected.String()),
		}
	}

	event := types.ProfilePictureUpdated{
		ID:         uuid.New(),
		Field:      types.ProfilePictureField,
		Value:      EncodeDataURI(detected.String(), data),
		MimeType:   detected.String(),
		SizeBytes:  int64(len(data)),
		Filename:   filename,
		OccurredAt: u.now().UTC(),
	}

	if u.dispatcher != nil {
		if err := u.dispatcher.Dispatch(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to dispatch profile picture update: %w", err)
		}
	}

	return &event, nil
}

// EncodeDataURI returns data as a base64 data URI of the given MIME type.
func EncodeDataURI(mimeType string, data []byte) string {
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString("data:")
	sb.WriteString(mimeType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

func humanSize(n int64) string {
	if n%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", n>>20)
	}
	if n%(1<<10) == 0 {
		return fmt.Sprintf("%dKB", n>>10)
	}
	return fmt.Sprintf("%d bytes", n)
}
