package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingKind is the explicit tag distinguishing the two listing variants.
// The kind is decided once when the draft is created and is never inferred
// from the presence or absence of a date.
type ListingKind string

const (
	// ListingKindEvent is a time-bound happening.
	ListingKindEvent ListingKind = "event"
	// ListingKindSite is a static place.
	ListingKindSite ListingKind = "site"
)

// Valid reports whether the kind is one of the two known variants.
func (k ListingKind) Valid() bool {
	return k == ListingKindEvent || k == ListingKindSite
}

// Label returns the capitalized kind name used in user-facing messages.
func (k ListingKind) Label() string {
	if k == ListingKindEvent {
		return "Event"
	}

	return "Site"
}

// MediaKind distinguishes image media from embedded video links.
type MediaKind string

const (
	// MediaKindImage is a direct image URL.
	MediaKindImage MediaKind = "image"
	// MediaKindVideo is a video-sharing (YouTube) URL.
	MediaKindVideo MediaKind = "video"
)

// MediaItem is a single piece of media attached to a listing. Exactly one of
// the image/video roles applies, selected by Kind.
type MediaItem struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	Kind      MediaKind
	URL       string
	Position  int // Order within the listing's media strip.
	CreatedAt time.Time
}

// MaxMediaItems is the upper bound on media attached to a single listing.
const MaxMediaItems = 10

// Listing is an Event or Site published to the timeline. The owner is fixed
// at creation; every mutation must be performed by that owner.
type Listing struct {
	ID           uuid.UUID
	Kind         ListingKind
	Name         string
	Description  string
	Tagline      string
	Date         *time.Time // Set iff Kind is event.
	ExternalLink string     // Optional; always stored with a scheme.
	UserID       uuid.UUID  // Owning user. Immutable once set.
	CreatedByID  uuid.UUID  // Creator; equals UserID in the current flows.
	Media        []*MediaItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether the given user owns this listing.
func (l *Listing) OwnedBy(userID uuid.UUID) bool {
	return l.UserID == userID
}
