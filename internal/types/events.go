// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfilePictureUpdated is published to the editing store when an uploaded
// photo has been accepted. The store owns the document; this is the only
// write path for PersonalInfo.ProfilePicture.
type ProfilePictureUpdated struct {
	ID         uuid.UUID `json:"id"`
	Field      string    `json:"field"`
	Value      string    `json:"value"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	Filename   string    `json:"filename,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProfilePictureField is the PersonalInfo field the event targets.
const ProfilePictureField = "personalInfo.profilePicture"

// PhotoUploadRequest describes an incoming photo before its bytes are read.
type PhotoUploadRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/jpg image/png"`
	Size        int64  `json:"size" validate:"gte=0"`
}

// Validate validates the PhotoUploadRequest using the validator.
func (r *PhotoUploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DescriptionRequest is the body of a line-cleaning request.
type DescriptionRequest struct {
	Description string `json:"description"`
}

// DescriptionResponse carries the cleaned description lines.
type DescriptionResponse struct {
	Lines []string `json:"lines"`
}

// SectionResponse reports the located section for one category.
type SectionResponse struct {
	Category   Category       `json:"category"`
	Found      bool           `json:"found"`
	Renderable bool           `json:"renderable"`
	Heading    string         `json:"heading"`
	Section    *ResumeSection `json:"section,omitempty"`
}
