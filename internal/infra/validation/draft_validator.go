// Package validation implements the listing draft rules.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"herenow/internal/domain/entity"
	"herenow/internal/domain/service"
)

var (
	youtubeRegex  = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+$`)
	imageExtRegex = regexp.MustCompile(`(?i)\.(jpeg|jpg|gif|png|webp)$`)
)

// draftValidator checks listing drafts field by field, in declaration order,
// so the first reported message is stable.
type draftValidator struct {
	validate *validator.Validate
}

// NewDraftValidator builds the production DraftValidator.
func NewDraftValidator() service.DraftValidator {
	return &draftValidator{
		validate: validator.New(),
	}
}

// ValidateDraft checks a complete draft. The external link is normalized
// in place (an "http://" prefix is added when the scheme is missing) before
// the URL check runs.
func (v *draftValidator) ValidateDraft(draft *entity.ListingDraft) error {
	verr := &entity.ValidationError{}

	if !draft.Kind.Valid() {
		verr.Add("kind", "Invalid listing kind")

		return verr
	}

	v.checkName(verr, draft.Kind, draft.Name)
	v.checkDescription(verr, draft.Description)
	if draft.Kind == entity.ListingKindSite {
		v.checkTagline(verr, draft.Tagline)
	}
	if draft.Kind == entity.ListingKindEvent {
		v.checkDate(verr, draft.Date)
	}
	v.checkUserID(verr, draft.UserID)

	draft.ExternalLink = NormalizeLink(draft.ExternalLink)
	v.checkLink(verr, draft.ExternalLink)
	v.checkMedia(verr, draft.Media)

	if verr.HasErrors() {
		return verr
	}

	return nil
}

// ValidateListing checks a fully merged listing on update, after patch
// fields have been folded into the stored values.
func (v *draftValidator) ValidateListing(listing *entity.Listing) error {
	verr := &entity.ValidationError{}

	v.checkName(verr, listing.Kind, listing.Name)
	v.checkDescription(verr, listing.Description)
	if listing.Kind == entity.ListingKindSite {
		v.checkTagline(verr, listing.Tagline)
	}
	if listing.Kind == entity.ListingKindEvent && listing.Date == nil {
		verr.Add("date", "Invalid date")
	}

	listing.ExternalLink = NormalizeLink(listing.ExternalLink)
	v.checkLink(verr, listing.ExternalLink)

	media := make([]entity.DraftMediaItem, 0, len(listing.Media))
	for _, item := range listing.Media {
		media = append(media, entity.DraftMediaItem{Kind: item.Kind, URL: item.URL})
	}
	v.checkMedia(verr, media)

	if verr.HasErrors() {
		return verr
	}

	return nil
}

func (v *draftValidator) checkName(verr *entity.ValidationError, kind entity.ListingKind, name string) {
	if strings.TrimSpace(name) != "" {
		return
	}

	switch kind {
	case entity.ListingKindEvent:
		verr.Add("name", "Event title is required")
	case entity.ListingKindSite:
		verr.Add("name", "Site name is required")
	}
}

func (v *draftValidator) checkDescription(verr *entity.ValidationError, description string) {
	if strings.TrimSpace(description) == "" {
		verr.Add("description", "Description is required")
	}
}

func (v *draftValidator) checkTagline(verr *entity.ValidationError, tagline string) {
	if strings.TrimSpace(tagline) == "" {
		verr.Add("tagline", "Tagline is required")
	}
}

func (v *draftValidator) checkDate(verr *entity.ValidationError, date string) {
	if _, err := ParseDate(date); err != nil {
		verr.Add("date", "Invalid date")
	}
}

func (v *draftValidator) checkUserID(verr *entity.ValidationError, userID uuid.UUID) {
	if userID == uuid.Nil {
		verr.Add("userId", "Invalid user ID")
	}
}

func (v *draftValidator) checkLink(verr *entity.ValidationError, link string) {
	if link == "" {
		return
	}

	if err := v.validate.Var(link, "url"); err != nil {
		verr.Add("externalLink", "Invalid URL")
	}
}

func (v *draftValidator) checkMedia(verr *entity.ValidationError, media []entity.DraftMediaItem) {
	if len(media) > entity.MaxMediaItems {
		verr.Add("media", "Too many media items")

		return
	}

	for _, item := range media {
		switch item.Kind {
		case entity.MediaKindImage:
			if !imageExtRegex.MatchString(item.URL) {
				verr.Add("media", "Invalid image URL")

				return
			}
		case entity.MediaKindVideo:
			if !youtubeRegex.MatchString(item.URL) {
				verr.Add("media", "Invalid video URL")

				return
			}
		default:
			verr.Add("media", "Invalid media kind")

			return
		}
	}
}

// NormalizeLink adds an "http://" prefix to links submitted without a scheme.
// Empty links pass through untouched.
func NormalizeLink(link string) string {
	if link == "" {
		return ""
	}

	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "http://" + link
	}

	return link
}

// dateLayouts mirrors the permissive parsing of the submission form's date
// field: full RFC 3339 timestamps and bare calendar dates both pass.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the raw date string a draft carries.
func (v *draftValidator) ParseDate(raw string) (time.Time, error) {
	return ParseDate(raw)
}

// ParseDate parses the raw date string a draft carries.
func ParseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
