package postgres

import (
	"context"

	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/domain/repository"
	"herenow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain's ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a listing together with its media items and fills in the
// generated IDs. GORM inserts the media association rows in the same call;
// callers wanting atomicity run this inside the transaction manager.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("listing owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt
	for i, itemM := range listingM.MediaItems {
		if i < len(listing.Media) {
			listing.Media[i].ID = itemM.ID
			listing.Media[i].ListingID = itemM.ListingID
		}
	}

	return nil
}

// FindByID returns a listing with its media preloaded.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Preload("MediaItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// UpdateOwned persists the listing's mutable fields and replaces its media
// set. The UPDATE carries the owner in the WHERE clause so a row that
// changed hands (or vanished) since the caller's read matches nothing.
func (repo *listingRepository) UpdateOwned(ctx context.Context, listing *entity.Listing, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND user_id = ?", listing.ID, ownerID).
		Updates(map[string]any{
			"name":          listing.Name,
			"description":   listing.Description,
			"tagline":       listing.Tagline,
			"date":          listing.Date,
			"external_link": listing.ExternalLink,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	// Replace the media set wholesale; order is the slice order.
	err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listing.ID).
		Delete(&model.MediaItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear listing media")
	}

	if len(listing.Media) > 0 {
		itemsM := fromMediaDomain(listing.ID, listing.Media)
		if err := repo.db.WithContext(ctx).Create(&itemsM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save listing media")
		}
		for i := range itemsM {
			if i < len(listing.Media) {
				listing.Media[i].ID = itemsM[i].ID
				listing.Media[i].ListingID = itemsM[i].ListingID
			}
		}
	}

	return nil
}

// DeleteOwned removes a listing and its media when ownerID matches the
// stored owner.
func (repo *listingRepository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("listing_id = ?", id).
		Delete(&model.MediaItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete listing media")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.ListingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// Timeline returns a page of listings, newest first, with media preloaded.
func (repo *listingRepository) Timeline(ctx context.Context, query repository.TimelineQuery) ([]*entity.Listing, error) {
	db := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Preload("MediaItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC")

	if query.Kind != nil {
		db = db.Where("kind = ?", string(*query.Kind))
	}
	if query.UserID != nil {
		db = db.Where("user_id = ?", *query.UserID)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var listingsM []model.ListingModel
	if err := db.Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load timeline")
	}

	listings := make([]*entity.Listing, 0, len(listingsM))
	for i := range listingsM {
		listings = append(listings, toListingDomain(&listingsM[i]))
	}

	return listings, nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	media := make([]*entity.MediaItem, 0, len(data.MediaItems))
	for _, itemM := range data.MediaItems {
		media = append(media, &entity.MediaItem{
			ID:        itemM.ID,
			ListingID: itemM.ListingID,
			Kind:      entity.MediaKind(itemM.Kind),
			URL:       itemM.URL,
			Position:  itemM.Position,
			CreatedAt: itemM.CreatedAt,
		})
	}

	return &entity.Listing{
		ID:           data.ID,
		Kind:         entity.ListingKind(data.Kind),
		Name:         data.Name,
		Description:  data.Description,
		Tagline:      data.Tagline,
		Date:         data.Date,
		ExternalLink: data.ExternalLink,
		UserID:       data.UserID,
		CreatedByID:  data.CreatedByID,
		Media:        media,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM model.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:           data.ID,
		Kind:         string(data.Kind),
		Name:         data.Name,
		Description:  data.Description,
		Tagline:      data.Tagline,
		Date:         data.Date,
		ExternalLink: data.ExternalLink,
		UserID:       data.UserID,
		CreatedByID:  data.CreatedByID,
		MediaItems:   fromMediaDomain(data.ID, data.Media),
	}
}

// fromMediaDomain converts domain media items to GORM models, assigning
// positions from slice order.
func fromMediaDomain(listingID uuid.UUID, media []*entity.MediaItem) []model.MediaItemModel {
	itemsM := make([]model.MediaItemModel, 0, len(media))
	for i, item := range media {
		itemsM = append(itemsM, model.MediaItemModel{
			ListingID: listingID,
			Kind:      string(item.Kind),
			URL:       item.URL,
			Position:  i,
		})
	}

	return itemsM
}
