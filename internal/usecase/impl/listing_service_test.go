package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"herenow/config"
	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/domain/repository"
	mockRepo "herenow/internal/mocks/repository"
	mockSvc "herenow/internal/mocks/service"
	"herenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockListingRepository
	validator   *mockSvc.MockDraftValidator
	publisher   *mockSvc.MockEventPublisher
	qrService   *mockSvc.MockQRCodeService
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	validator := mockSvc.NewMockDraftValidator(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "https://herenow.test"

	service := NewListingService(ListingServiceParams{
		TxManager:   txManager,
		ListingRepo: listingRepo,
		Validator:   validator,
		Publisher:   publisher,
		QRService:   qrService,
		Config:      cfg,
		Logger:      logger,
	})

	return listingServiceFixtures{
		service:     service,
		txManager:   txManager,
		listingRepo: listingRepo,
		validator:   validator,
		publisher:   publisher,
		qrService:   qrService,
	}
}

// expectTransaction wires the transaction manager so the function under test
// runs against the fixture's listing repository and its error propagates.
func (fx listingServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ListingRepo().Return(fx.listingRepo)

			return fn(factory)
		})
}

func eventDraft(owner uuid.UUID) *entity.ListingDraft {
	return &entity.ListingDraft{
		Kind:        entity.ListingKindEvent,
		Name:        "Lantern Night",
		Description: "Floating lanterns on the river",
		Date:        "2026-09-01",
		UserID:      owner,
		Media: []entity.DraftMediaItem{
			{Kind: entity.MediaKindImage, URL: "https://cdn.example.com/lanterns.jpg"},
			{Kind: entity.MediaKindVideo, URL: "https://youtube.com/watch?v=abc123"},
		},
	}
}

func storedEvent(owner uuid.UUID) *entity.Listing {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Listing{
		ID:          uuid.New(),
		Kind:        entity.ListingKindEvent,
		Name:        "Lantern Night",
		Description: "Floating lanterns on the river",
		Date:        &date,
		UserID:      owner,
		CreatedByID: owner,
	}
}

func TestListingService_Create_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	draft := eventDraft(owner)

	fx.validator.EXPECT().ValidateDraft(draft).Return(nil)
	fx.validator.EXPECT().ParseDate("2026-09-01").
		Return(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(ctx context.Context, listing *entity.Listing) {
			listing.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	listing, err := fx.service.Create(ctx, session, draft)

	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, entity.ListingKindEvent, listing.Kind)
	assert.Equal(t, owner, listing.UserID)
	assert.Equal(t, owner, listing.CreatedByID)
	require.NotNil(t, listing.Date)
	assert.Equal(t, 2026, listing.Date.Year())
	require.Len(t, listing.Media, 2)
	assert.Equal(t, 0, listing.Media[0].Position)
	assert.Equal(t, 1, listing.Media[1].Position)
}

func TestListingService_Create_NilSession(t *testing.T) {
	fx := createTestListingService(t)

	draft := eventDraft(uuid.New())

	listing, err := fx.service.Create(context.Background(), nil, draft)

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedAction))
}

func TestListingService_Create_SessionMismatch(t *testing.T) {
	fx := createTestListingService(t)

	draft := eventDraft(uuid.New())
	session := &entity.Session{UserID: uuid.New()}

	listing, err := fx.service.Create(context.Background(), session, draft)

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedAction))
}

func TestListingService_Create_ValidationFailure(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	draft := eventDraft(owner)
	draft.Name = ""

	verr := &entity.ValidationError{}
	verr.Add("name", "Event title is required")
	fx.validator.EXPECT().ValidateDraft(draft).Return(verr)

	listing, err := fx.service.Create(ctx, session, draft)

	assert.Nil(t, listing)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Event title is required", validationErr.First())
}

func TestListingService_Create_PersistenceFailure(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	draft := eventDraft(owner)

	fx.validator.EXPECT().ValidateDraft(draft).Return(nil)
	fx.validator.EXPECT().ParseDate("2026-09-01").
		Return(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	listing, err := fx.service.Create(ctx, session, draft)

	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Error creating event", appErr.Message())
}

func TestListingService_Update_NotFoundMessages(t *testing.T) {
	testCases := []struct {
		kind    entity.ListingKind
		message string
	}{
		{entity.ListingKindEvent, "event not found"},
		{entity.ListingKindSite, "Site not found"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			fx := createTestListingService(t)

			ctx := context.Background()
			id := uuid.New()
			session := &entity.Session{UserID: uuid.New()}

			fx.listingRepo.EXPECT().
				FindByID(ctx, id).
				Return(nil, repository.ErrListingNotFound)

			listing, err := fx.service.Update(ctx, session, tc.kind, id, &entity.ListingPatch{})

			assert.Nil(t, listing)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.message, appErr.Message())
		})
	}
}

func TestListingService_Delete_NotFoundMessages(t *testing.T) {
	testCases := []struct {
		kind    entity.ListingKind
		message string
	}{
		{entity.ListingKindEvent, "Event not found"},
		{entity.ListingKindSite, "Site not found"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			fx := createTestListingService(t)

			ctx := context.Background()
			id := uuid.New()
			session := &entity.Session{UserID: uuid.New()}

			fx.listingRepo.EXPECT().
				FindByID(ctx, id).
				Return(nil, repository.ErrListingNotFound)

			err := fx.service.Delete(ctx, session, tc.kind, id)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.message, appErr.Message())
		})
	}
}

func TestListingService_Update_KindMismatchIsNotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := storedEvent(owner)
	stored.Kind = entity.ListingKindSite

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	listing, err := fx.service.Update(ctx, session, entity.ListingKindEvent, stored.ID, &entity.ListingPatch{})

	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "event not found", appErr.Message())
}

func TestListingService_Update_NotOwner(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	stored := storedEvent(uuid.New())
	session := &entity.Session{UserID: uuid.New()}

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	// No validator expectations: ownership is decided before validation runs.
	listing, err := fx.service.Update(ctx, session, entity.ListingKindEvent, stored.ID, &entity.ListingPatch{})

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedAction))
}

func TestListingService_Update_MergesPatchOverStoredValues(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := storedEvent(owner)
	originalDescription := stored.Description

	newName := "Lantern Night 2026"
	patch := &entity.ListingPatch{Name: &newName}

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.validator.EXPECT().ValidateListing(stored).Return(nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().UpdateOwned(ctx, stored, owner).Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	listing, err := fx.service.Update(ctx, session, entity.ListingKindEvent, stored.ID, patch)

	require.NoError(t, err)
	assert.Equal(t, newName, listing.Name)
	assert.Equal(t, originalDescription, listing.Description)
	assert.NotNil(t, listing.Date)
}

func TestListingService_Update_SitePatchDateIgnored(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := &entity.Listing{
		ID:          uuid.New(),
		Kind:        entity.ListingKindSite,
		Name:        "Old Town Hall",
		Description: "Restored 19th century building",
		Tagline:     "History in the city center",
		UserID:      owner,
		CreatedByID: owner,
	}

	date := "2026-09-01"
	patch := &entity.ListingPatch{Date: &date}

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	// No ParseDate expectation: a date in a site patch is never parsed.
	fx.validator.EXPECT().ValidateListing(stored).Return(nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().UpdateOwned(ctx, stored, owner).Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	listing, err := fx.service.Update(ctx, session, entity.ListingKindSite, stored.ID, patch)

	require.NoError(t, err)
	assert.Nil(t, listing.Date)
}

func TestListingService_Update_ConcurrentDeleteMapsToNotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := storedEvent(owner)

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.validator.EXPECT().ValidateListing(stored).Return(nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().UpdateOwned(ctx, stored, owner).Return(repository.ErrListingNotFound)

	listing, err := fx.service.Update(ctx, session, entity.ListingKindEvent, stored.ID, &entity.ListingPatch{})

	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "event not found", appErr.Message())
}

func TestListingService_Delete_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := storedEvent(owner)

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().DeleteOwned(ctx, stored.ID, owner).Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	err := fx.service.Delete(ctx, session, entity.ListingKindEvent, stored.ID)

	require.NoError(t, err)
}

func TestListingService_Delete_NotOwner(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	stored := storedEvent(uuid.New())
	session := &entity.Session{UserID: uuid.New()}

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	err := fx.service.Delete(ctx, session, entity.ListingKindEvent, stored.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorizedAction))
}

func TestListingService_Delete_PublishFailureDoesNotFailMutation(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	owner := uuid.New()
	session := &entity.Session{UserID: owner}
	stored := storedEvent(owner)

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	fx.expectTransaction(t, ctx)
	fx.listingRepo.EXPECT().DeleteOwned(ctx, stored.ID, owner).Return(nil)

	fx.publisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(errors.New("broker unavailable"))

	err := fx.service.Delete(ctx, session, entity.ListingKindEvent, stored.ID)

	require.NoError(t, err)
}

func TestListingService_Timeline_LimitClamping(t *testing.T) {
	testCases := []struct {
		name          string
		input         *usecase.TimelineInput
		expectedLimit int
	}{
		{"nil input uses default", nil, 20},
		{"zero limit uses default", &usecase.TimelineInput{}, 20},
		{"excessive limit clamps to max", &usecase.TimelineInput{Limit: 1000}, 100},
		{"normal limit passes through", &usecase.TimelineInput{Limit: 5}, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestListingService(t)

			ctx := context.Background()
			fx.listingRepo.EXPECT().
				Timeline(ctx, mock.MatchedBy(func(query repository.TimelineQuery) bool {
					return query.Limit == tc.expectedLimit
				})).
				Return([]*entity.Listing{}, nil)

			_, err := fx.service.Timeline(ctx, tc.input)

			require.NoError(t, err)
		})
	}
}

func TestListingService_Get_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	listing, err := fx.service.Get(ctx, id)

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestListingService_ShareQRCode(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	stored := storedEvent(uuid.New())
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.listingRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	expectedURL := fmt.Sprintf("https://herenow.test/listings/%s", stored.ID)
	fx.qrService.EXPECT().GeneratePNG(expectedURL, 512).Return(png, nil)

	result, err := fx.service.ShareQRCode(ctx, stored.ID, 512)

	require.NoError(t, err)
	assert.Equal(t, png, result)
}
