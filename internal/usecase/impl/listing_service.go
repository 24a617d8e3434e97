// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"herenow/config"
	deliverycontext "herenow/internal/delivery/context"
	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/domain/repository"
	"herenow/internal/domain/service"
	"herenow/internal/errors"
	"herenow/internal/usecase"
)

const (
	defaultTimelineLimit = 20
	maxTimelineLimit     = 100
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager    repository.TransactionManager
	listingRepo  repository.ListingRepository
	validator    service.DraftValidator
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	shareBaseURL string
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	Validator   service.DraftValidator
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	defaultLimit := defaultTimelineLimit
	maxLimit := maxTimelineLimit
	if params.Config.Timeline != nil {
		if params.Config.Timeline.DefaultLimit > 0 {
			defaultLimit = params.Config.Timeline.DefaultLimit
		}
		if params.Config.Timeline.MaxLimit > 0 {
			maxLimit = params.Config.Timeline.MaxLimit
		}
	}

	shareBaseURL := params.Config.HTTP.BaseURL
	if params.Config.QRCode != nil && params.Config.QRCode.BaseURL != "" {
		shareBaseURL = params.Config.QRCode.BaseURL
	}

	return &listingService{
		txManager:    params.TxManager,
		listingRepo:  params.ListingRepo,
		validator:    params.Validator,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		shareBaseURL: shareBaseURL,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create authorizes the session against the draft's owner, validates the
// draft, and persists the listing with its media in one transaction.
func (srv *listingService) Create(ctx context.Context, session *entity.Session, draft *entity.ListingDraft) (*entity.Listing, error) {
	if session == nil || session.UserID != draft.UserID {
		srv.log(ctx).Warn("Rejected listing create from non-owner session",
			slog.String("draftOwner", draft.UserID.String()))

		return nil, domainerrors.ErrUnauthorizedAction
	}

	if err := srv.validator.ValidateDraft(draft); err != nil {
		return nil, err
	}

	listing, err := srv.buildListing(draft)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ListingRepo().Create(ctx, listing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create listing",
			slog.String("kind", string(draft.Kind)),
			slog.Any("error", err))

		return nil, domainerrors.ListingPersistenceFailure("creating", string(draft.Kind))
	}

	srv.publish(ctx, service.ListingCreated, listing)

	return listing, nil
}

// Update loads the listing, checks ownership before validating anything,
// merges the patch over stored values, and persists with an owner-conditional
// write so a concurrent delete or ownership change matches nothing.
func (srv *listingService) Update(ctx context.Context, session *entity.Session, kind entity.ListingKind, id uuid.UUID, patch *entity.ListingPatch) (*entity.Listing, error) {
	listing, err := srv.findByKind(ctx, kind, id, notFoundOnUpdate)
	if err != nil {
		return nil, err
	}

	if session == nil || !listing.OwnedBy(session.UserID) {
		srv.log(ctx).Warn("Rejected listing update from non-owner session",
			slog.String("listingID", id.String()))

		return nil, domainerrors.ErrUnauthorizedAction
	}

	srv.applyPatch(listing, patch)

	if err := srv.validator.ValidateListing(listing); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ListingRepo().UpdateOwned(ctx, listing, session.UserID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, notFoundError(kind, notFoundOnUpdate)
		}
		srv.log(ctx).Error("Failed to update listing",
			slog.String("listingID", id.String()),
			slog.Any("error", err))

		return nil, domainerrors.ListingPersistenceFailure("updating", string(kind))
	}

	srv.publish(ctx, service.ListingUpdated, listing)

	return listing, nil
}

// Delete loads the listing, checks ownership, and removes it together with
// its media.
func (srv *listingService) Delete(ctx context.Context, session *entity.Session, kind entity.ListingKind, id uuid.UUID) error {
	listing, err := srv.findByKind(ctx, kind, id, notFoundOnDelete)
	if err != nil {
		return err
	}

	if session == nil || !listing.OwnedBy(session.UserID) {
		srv.log(ctx).Warn("Rejected listing delete from non-owner session",
			slog.String("listingID", id.String()))

		return domainerrors.ErrUnauthorizedAction
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ListingRepo().DeleteOwned(ctx, id, session.UserID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return notFoundError(kind, notFoundOnDelete)
		}
		srv.log(ctx).Error("Failed to delete listing",
			slog.String("listingID", id.String()),
			slog.Any("error", err))

		return domainerrors.ListingPersistenceFailure("deleting", string(kind))
	}

	srv.publish(ctx, service.ListingDeleted, listing)

	return nil
}

// Get returns a single listing with media.
func (srv *listingService) Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	return listing, nil
}

// Timeline returns listings newest first, media preloaded.
func (srv *listingService) Timeline(ctx context.Context, input *usecase.TimelineInput) ([]*entity.Listing, error) {
	query := repository.TimelineQuery{
		Limit: srv.defaultLimit,
	}
	if input != nil {
		query.Kind = input.Kind
		query.UserID = input.UserID
		if input.Limit > 0 {
			query.Limit = min(input.Limit, srv.maxLimit)
		}
		if input.Offset > 0 {
			query.Offset = input.Offset
		}
	}

	listings, err := srv.listingRepo.Timeline(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load timeline")
	}

	return listings, nil
}

// ValidateDraft runs draft validation without persisting.
func (srv *listingService) ValidateDraft(_ context.Context, draft *entity.ListingDraft) error {
	return srv.validator.ValidateDraft(draft)
}

// ShareQRCode renders the listing's share link as a PNG QR code.
func (srv *listingService) ShareQRCode(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	listing, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shareURL := fmt.Sprintf("%s/listings/%s", srv.shareBaseURL, listing.ID)

	png, err := srv.qrService.GeneratePNG(shareURL, size)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR code",
			slog.String("listingID", id.String()),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

type notFoundContext int

const (
	notFoundOnUpdate notFoundContext = iota
	notFoundOnDelete
)

// notFoundError keeps the user-facing strings of the product, including the
// lower-case "event not found" the update path has always returned.
func notFoundError(kind entity.ListingKind, when notFoundContext) error {
	if kind == entity.ListingKindEvent {
		if when == notFoundOnUpdate {
			return domainerrors.ListingNotFound("event not found")
		}

		return domainerrors.ListingNotFound("Event not found")
	}

	return domainerrors.ListingNotFound("Site not found")
}

// findByKind loads a listing and treats a kind mismatch the same as a
// missing row.
func (srv *listingService) findByKind(ctx context.Context, kind entity.ListingKind, id uuid.UUID, when notFoundContext) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, notFoundError(kind, when)
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	if listing.Kind != kind {
		return nil, notFoundError(kind, when)
	}

	return listing, nil
}

// buildListing converts a validated draft into a listing entity.
func (srv *listingService) buildListing(draft *entity.ListingDraft) (*entity.Listing, error) {
	listing := &entity.Listing{
		Kind:         draft.Kind,
		Name:         draft.Name,
		Description:  draft.Description,
		Tagline:      draft.Tagline,
		ExternalLink: draft.ExternalLink,
		UserID:       draft.UserID,
		CreatedByID:  draft.UserID,
		Media:        toMediaItems(draft.Media),
	}

	if draft.Kind == entity.ListingKindEvent {
		parsed, err := srv.validator.ParseDate(draft.Date)
		if err != nil {
			// The draft already passed validation; a parse failure here
			// means the rules and the parser disagree.
			return nil, errors.Wrap(err, "failed to parse validated date")
		}
		listing.Date = &parsed
	}

	return listing, nil
}

// applyPatch merges the patch over the stored listing. Nil fields keep the
// stored value; a provided but unparseable date clears it so validation
// reports it. Sites have no date, so a date field in a site patch is ignored.
func (srv *listingService) applyPatch(listing *entity.Listing, patch *entity.ListingPatch) {
	if patch == nil {
		return
	}

	if patch.Name != nil {
		listing.Name = *patch.Name
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.Tagline != nil {
		listing.Tagline = *patch.Tagline
	}
	if patch.Date != nil && listing.Kind == entity.ListingKindEvent {
		if parsed, err := srv.validator.ParseDate(*patch.Date); err == nil {
			listing.Date = &parsed
		} else {
			listing.Date = nil
		}
	}
	if patch.ExternalLink != nil {
		listing.ExternalLink = *patch.ExternalLink
	}
	if patch.Media != nil {
		listing.Media = toMediaItems(*patch.Media)
	}
}

// publish announces a lifecycle event; failures are logged, never returned.
func (srv *listingService) publish(ctx context.Context, action service.ListingEventAction, listing *entity.Listing) {
	event := &service.ListingEvent{
		Action:    action,
		ListingID: listing.ID,
		Kind:      listing.Kind,
		UserID:    listing.UserID,
		Name:      listing.Name,
	}

	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("action", string(action)),
			slog.String("listingID", listing.ID.String()),
			slog.Any("error", err))
	}
}

func toMediaItems(items []entity.DraftMediaItem) []*entity.MediaItem {
	media := make([]*entity.MediaItem, 0, len(items))
	for i, item := range items {
		media = append(media, &entity.MediaItem{
			Kind:     item.Kind,
			URL:      item.URL,
			Position: i,
		})
	}

	return media
}
