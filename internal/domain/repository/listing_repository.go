package repository

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
	"herenow/internal/errors"
)

// ErrListingNotFound is returned when the requested listing row does not
// exist, or when an owner-conditional write matched no row.
var ErrListingNotFound = errors.New("listing not found")

// TimelineQuery bounds a timeline page. Listings are always ordered newest
// first by creation time.
type TimelineQuery struct {
	// Kind narrows the feed to one listing kind when non-nil.
	Kind *entity.ListingKind
	// UserID narrows the feed to one owner when non-nil.
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// ListingRepository handles persistence of listings and their media items.
type ListingRepository interface {
	// Create persists a listing together with its media items atomically
	// and fills in the generated IDs.
	Create(ctx context.Context, listing *entity.Listing) error
	// FindByID returns a listing with its media preloaded;
	// ErrListingNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	// UpdateOwned persists the listing's mutable fields, replacing its media
	// set, but only when ownerID matches the stored owner. Returns
	// ErrListingNotFound when no row matched, closing the window between an
	// ownership check and the write.
	UpdateOwned(ctx context.Context, listing *entity.Listing, ownerID uuid.UUID) error
	// DeleteOwned removes a listing and its media, but only when ownerID
	// matches the stored owner. Returns ErrListingNotFound when no row
	// matched.
	DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	// Timeline returns a page of listings, newest first, with media preloaded.
	Timeline(ctx context.Context, query TimelineQuery) ([]*entity.Listing, error)
}
