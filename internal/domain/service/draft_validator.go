package service

import (
	"time"

	"herenow/internal/domain/entity"
)

// DraftValidator checks listing drafts against the submission rules and
// normalizes what it can (external links get an http:// prefix when the
// scheme is missing).
type DraftValidator interface {
	// ValidateDraft checks a complete draft. It mutates the draft only to
	// normalize the external link, and returns a *entity.ValidationError
	// listing every failing field in declaration order.
	ValidateDraft(draft *entity.ListingDraft) error
	// ValidateListing checks a fully merged listing, used on update after
	// patch fields have been folded into the stored values.
	ValidateListing(listing *entity.Listing) error
	// ParseDate parses the raw date string a draft carries.
	ParseDate(raw string) (time.Time, error)
}
