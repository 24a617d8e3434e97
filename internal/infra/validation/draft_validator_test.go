package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herenow/internal/domain/entity"
)

func validEventDraft() *entity.ListingDraft {
	return &entity.ListingDraft{
		Kind:        entity.ListingKindEvent,
		Name:        "Summer Market",
		Description: "A weekend market by the river",
		Date:        "2026-07-04T18:00",
		UserID:      uuid.New(),
	}
}

func validSiteDraft() *entity.ListingDraft {
	return &entity.ListingDraft{
		Kind:        entity.ListingKindSite,
		Name:        "Old Town Hall",
		Description: "Restored 19th century building",
		Tagline:     "History in the city center",
		UserID:      uuid.New(),
	}
}

func firstMessage(t *testing.T, err error) string {
	t.Helper()

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)

	return verr.First()
}

func TestDraftValidator_ValidDrafts(t *testing.T) {
	v := NewDraftValidator()

	assert.NoError(t, v.ValidateDraft(validEventDraft()))
	assert.NoError(t, v.ValidateDraft(validSiteDraft()))
}

func TestDraftValidator_InvalidKindShortCircuits(t *testing.T) {
	v := NewDraftValidator()

	draft := validEventDraft()
	draft.Kind = entity.ListingKind("article")
	draft.Name = ""

	err := v.ValidateDraft(draft)

	assert.Equal(t, "Invalid listing kind", firstMessage(t, err))
}

func TestDraftValidator_FirstFailureWins(t *testing.T) {
	v := NewDraftValidator()

	tests := []struct {
		name    string
		mutate  func(*entity.ListingDraft)
		draft   func() *entity.ListingDraft
		message string
	}{
		{
			name:    "event name before description",
			draft:   validEventDraft,
			mutate:  func(d *entity.ListingDraft) { d.Name = " "; d.Description = "" },
			message: "Event title is required",
		},
		{
			name:    "site name message differs",
			draft:   validSiteDraft,
			mutate:  func(d *entity.ListingDraft) { d.Name = "" },
			message: "Site name is required",
		},
		{
			name:    "description before tagline",
			draft:   validSiteDraft,
			mutate:  func(d *entity.ListingDraft) { d.Description = ""; d.Tagline = "" },
			message: "Description is required",
		},
		{
			name:    "site tagline required",
			draft:   validSiteDraft,
			mutate:  func(d *entity.ListingDraft) { d.Tagline = "" },
			message: "Tagline is required",
		},
		{
			name:    "event date required",
			draft:   validEventDraft,
			mutate:  func(d *entity.ListingDraft) { d.Date = "" },
			message: "Invalid date",
		},
		{
			name:    "event date unparseable",
			draft:   validEventDraft,
			mutate:  func(d *entity.ListingDraft) { d.Date = "next friday" },
			message: "Invalid date",
		},
		{
			name:    "date before user id",
			draft:   validEventDraft,
			mutate:  func(d *entity.ListingDraft) { d.Date = "bogus"; d.UserID = uuid.Nil },
			message: "Invalid date",
		},
		{
			name:    "missing user id",
			draft:   validEventDraft,
			mutate:  func(d *entity.ListingDraft) { d.UserID = uuid.Nil },
			message: "Invalid user ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := tt.draft()
			tt.mutate(draft)

			err := v.ValidateDraft(draft)

			assert.Equal(t, tt.message, firstMessage(t, err))
		})
	}
}

func TestDraftValidator_TaglineIgnoredForEvents(t *testing.T) {
	v := NewDraftValidator()

	draft := validEventDraft()
	draft.Tagline = ""

	assert.NoError(t, v.ValidateDraft(draft))
}

func TestDraftValidator_DateIgnoredForSites(t *testing.T) {
	v := NewDraftValidator()

	draft := validSiteDraft()
	draft.Date = ""

	assert.NoError(t, v.ValidateDraft(draft))
}

func TestDraftValidator_LinkNormalizedBeforeURLCheck(t *testing.T) {
	v := NewDraftValidator()

	draft := validSiteDraft()
	draft.ExternalLink = "example.com/about"

	require.NoError(t, v.ValidateDraft(draft))
	assert.Equal(t, "http://example.com/about", draft.ExternalLink)
}

func TestDraftValidator_InvalidLinkRejected(t *testing.T) {
	v := NewDraftValidator()

	draft := validSiteDraft()
	draft.ExternalLink = "not a url at all"

	err := v.ValidateDraft(draft)

	assert.Equal(t, "Invalid URL", firstMessage(t, err))
}

func TestDraftValidator_Media(t *testing.T) {
	v := NewDraftValidator()

	t.Run("accepts images and youtube videos", func(t *testing.T) {
		draft := validEventDraft()
		draft.Media = []entity.DraftMediaItem{
			{Kind: entity.MediaKindImage, URL: "https://cdn.example.com/photo.JPG"},
			{Kind: entity.MediaKindImage, URL: "https://cdn.example.com/banner.webp"},
			{Kind: entity.MediaKindVideo, URL: "https://youtu.be/dQw4w9WgXcQ"},
			{Kind: entity.MediaKindVideo, URL: "www.youtube.com/watch?v=dQw4w9WgXcQ"},
		}

		assert.NoError(t, v.ValidateDraft(draft))
	})

	t.Run("rejects more than the media cap", func(t *testing.T) {
		draft := validEventDraft()
		for i := 0; i <= entity.MaxMediaItems; i++ {
			draft.Media = append(draft.Media, entity.DraftMediaItem{
				Kind: entity.MediaKindImage,
				URL:  "https://cdn.example.com/photo.png",
			})
		}

		err := v.ValidateDraft(draft)

		assert.Equal(t, "Too many media items", firstMessage(t, err))
	})

	t.Run("rejects non-image extension", func(t *testing.T) {
		draft := validEventDraft()
		draft.Media = []entity.DraftMediaItem{
			{Kind: entity.MediaKindImage, URL: "https://cdn.example.com/document.pdf"},
		}

		err := v.ValidateDraft(draft)

		assert.Equal(t, "Invalid image URL", firstMessage(t, err))
	})

	t.Run("rejects non-youtube video", func(t *testing.T) {
		draft := validEventDraft()
		draft.Media = []entity.DraftMediaItem{
			{Kind: entity.MediaKindVideo, URL: "https://vimeo.com/123456"},
		}

		err := v.ValidateDraft(draft)

		assert.Equal(t, "Invalid video URL", firstMessage(t, err))
	})

	t.Run("rejects unknown media kind", func(t *testing.T) {
		draft := validEventDraft()
		draft.Media = []entity.DraftMediaItem{
			{Kind: entity.MediaKind("audio"), URL: "https://cdn.example.com/track.mp3"},
		}

		err := v.ValidateDraft(draft)

		assert.Equal(t, "Invalid media kind", firstMessage(t, err))
	})
}

func TestDraftValidator_ValidateListing(t *testing.T) {
	v := NewDraftValidator()

	date := time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC)
	listing := &entity.Listing{
		Kind:        entity.ListingKindEvent,
		Name:        "Summer Market",
		Description: "A weekend market by the river",
		Date:        &date,
	}

	require.NoError(t, v.ValidateListing(listing))

	t.Run("event without date fails", func(t *testing.T) {
		listing := &entity.Listing{
			Kind:        entity.ListingKindEvent,
			Name:        "Summer Market",
			Description: "A weekend market by the river",
		}

		err := v.ValidateListing(listing)

		assert.Equal(t, "Invalid date", firstMessage(t, err))
	})

	t.Run("link normalized on merged listing", func(t *testing.T) {
		listing := &entity.Listing{
			Kind:         entity.ListingKindSite,
			Name:         "Old Town Hall",
			Description:  "Restored 19th century building",
			Tagline:      "History in the city center",
			ExternalLink: "townhall.example.org",
		}

		require.NoError(t, v.ValidateListing(listing))
		assert.Equal(t, "http://townhall.example.org", listing.ExternalLink)
	})
}

func TestNormalizeLink(t *testing.T) {
	assert.Equal(t, "", NormalizeLink(""))
	assert.Equal(t, "http://example.com", NormalizeLink("example.com"))
	assert.Equal(t, "http://example.com", NormalizeLink("http://example.com"))
	assert.Equal(t, "https://example.com", NormalizeLink("https://example.com"))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2026-07-04T18:00:00Z", time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC)},
		{"2026-07-04T18:00", time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC)},
		{"2026-07-04", time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parsed, err := ParseDate(tt.raw)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(parsed))
		})
	}

	_, err := ParseDate("04/07/2026")
	assert.Error(t, err)
}
