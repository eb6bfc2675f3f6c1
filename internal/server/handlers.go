package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/photo"
	"github.com/jonathan/resume-builder/internal/projection"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

const (
	// maxBodyBytes bounds JSON request bodies.
	maxBodyBytes = 8 << 20
	// multipartOverhead is the slack allowed above the photo limit for form framing.
	multipartOverhead = 64 << 10
	// keepAliveInterval spaces comment lines on idle event streams.
	keepAliveInterval = 25 * time.Second
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

// handleProject projects a posted document
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := resume.DecodeDocument(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, projection.Project(doc, opts))
}

// handleSection locates the section for one category
func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("category")
	category, ok := types.ParseCategory(raw)
	if !ok {
		s.writeError(w, &ErrUnknownCategory{Category: raw})
		return
	}

	doc, err := resume.DecodeDocument(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	section, found := projection.FindSection(doc.Sections, category)
	s.jsonResponse(w, http.StatusOK, types.SectionResponse{
		Category:   category,
		Found:      found,
		Renderable: projection.IsSectionRenderable(section),
		Heading:    projection.Heading(section, category),
		Section:    section,
	})
}

// handleDescriptionLines cleans a single free-text description
func (s *Server) handleDescriptionLines(w http.ResponseWriter, r *http.Request) {
	var req types.DescriptionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.DescriptionResponse{
		Lines: projection.SplitDescriptionLines(req.Description),
	})
}

// handlePhotoUpload accepts a multipart "file" field and publishes the
// encoded picture on the event stream
func (s *Server) handlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.uploader.MaxBytes()+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, photo.NewTooLargeError(s.uploader.MaxBytes(), err))
			return
		}
		s.writeError(w, &ErrValidation{Field: "file", Message: "a multipart file field named \"file\" is required"})
		return
	}
	defer func() { _ = file.Close() }()

	event, err := s.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, event)
}

// handleEvents streams profile picture updates as Server-Sent Events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events, cancel := s.events.Subscribe()
	defer cancel()

	w.WriteHeader(http.StatusOK)
	if err := sse.WriteComment("connected"); err != nil {
		return
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := sse.WriteComment("keep-alive"); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent(event.ID.String(), "profile_picture_updated", event); err != nil {
				s.logger.Warn("error writing SSE event", zap.Error(err))
				return
			}
		}
	}
}

// requestOptions applies ?skill_label= and ?contact= overrides to the server defaults.
func (s *Server) requestOptions(r *http.Request) (projection.Options, error) {
	opts := s.options
	q := r.URL.Query()
	if label := q.Get("skill_label"); label != "" {
		opts.SkillCategory = label
	}
	if raw := q.Get("contact"); raw != "" {
		variant, err := projection.ParseContactVariant(raw)
		if err != nil {
			return opts, &ErrValidation{Field: "contact", Message: err.Error()}
		}
		opts.Contact = variant
	}
	return opts, nil
}

// writeError maps err to a status code and writes it, exposing schema
// field errors and user-facing upload messages.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	resp := ErrorResponse{Error: err.Error()}

	var (
		validationErr *schemas.ValidationError
		rejectedErr   *photo.RejectedError
	)
	switch {
	case errors.As(err, &rejectedErr):
		resp.Error = rejectedErr.Message
	case errors.As(err, &validationErr):
		resp.Error = "document does not match schema"
		resp.Details = validationErr.Errors
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		resp.Error = "internal server error"
	}

	s.jsonResponse(w, status, resp)
}
