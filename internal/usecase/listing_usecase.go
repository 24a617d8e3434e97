// Package usecase defines the application's business operation interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
)

// TimelineInput bounds a timeline page request.
type TimelineInput struct {
	// Kind narrows the feed to events or sites when non-nil.
	Kind *entity.ListingKind `json:"kind,omitempty"`
	// UserID narrows the feed to one owner when non-nil.
	UserID *uuid.UUID `json:"userId,omitempty"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// ListingUsecase defines the listing lifecycle operations. Every mutation
// takes the caller's session explicitly; there is no ambient identity.
type ListingUsecase interface {
	// Create authorizes the session against the draft's owner, validates
	// the draft, and persists the listing with its media atomically.
	Create(ctx context.Context, session *entity.Session, draft *entity.ListingDraft) (*entity.Listing, error)
	// Update loads the listing (absent ids map to a kind-specific not-found
	// error), checks ownership before validating anything, merges the patch
	// over stored values, validates the merged record, and persists it with
	// an owner-conditional write.
	Update(ctx context.Context, session *entity.Session, kind entity.ListingKind, id uuid.UUID, patch *entity.ListingPatch) (*entity.Listing, error)
	// Delete loads the listing, checks ownership, and removes it together
	// with its media.
	Delete(ctx context.Context, session *entity.Session, kind entity.ListingKind, id uuid.UUID) error
	// Get returns a single listing with media, for share surfaces.
	Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	// Timeline returns listings newest first.
	Timeline(ctx context.Context, input *TimelineInput) ([]*entity.Listing, error)
	// ValidateDraft runs draft validation without persisting, for the
	// client-side wizard's dry-run endpoint.
	ValidateDraft(ctx context.Context, draft *entity.ListingDraft) error
	// ShareQRCode renders the listing's share link as a PNG QR code.
	ShareQRCode(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
}
