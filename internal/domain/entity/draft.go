package entity

import (
	"github.com/google/uuid"
)

// DraftMediaItem is one media attachment collected by the client-side wizard
// before submission.
type DraftMediaItem struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
}

// ListingDraft is the strongly typed, unsaved listing data a client submits
// to create a listing. All fields are named and typed up front; the action
// layer never reads arbitrary form keys.
type ListingDraft struct {
	Kind         ListingKind      `json:"kind"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Tagline      string           `json:"tagline"`
	Date         string           `json:"date,omitempty"` // Raw date string; required iff Kind is event.
	ExternalLink string           `json:"externalLink,omitempty"`
	UserID       uuid.UUID        `json:"userId"`
	Media        []DraftMediaItem `json:"media,omitempty"`
}

// ListingPatch is the partial variant used by updates. A nil field means
// "keep the stored value" (merge-on-update); the owner is never part of a
// patch because ownership is immutable.
type ListingPatch struct {
	Name         *string           `json:"name,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Tagline      *string           `json:"tagline,omitempty"`
	Date         *string           `json:"date,omitempty"`
	ExternalLink *string           `json:"externalLink,omitempty"`
	Media        *[]DraftMediaItem `json:"media,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered list of field-level failures produced
// by draft validation. Callers surface only the first message.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface with the first failing field's message.
func (e *ValidationError) Error() string {
	return e.First()
}

// First returns the first failing field's message, the only one shown to users.
func (e *ValidationError) First() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}

	return e.Fields[0].Message
}

// Add appends a field failure, preserving field order.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
