package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"herenow/internal/delivery/http/middleware"
	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/metrics"
	mockUsecase "herenow/internal/mocks/usecase"
)

// actionResult mirrors the mutation response envelope.
type actionResult struct {
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

type listingHandlerFixtures struct {
	handler *ListingHandler
	uc      *mockUsecase.MockListingUsecase
}

func createTestListingHandler(t *testing.T) listingHandlerFixtures {
	uc := mockUsecase.NewMockListingUsecase(t)
	collector := metrics.NewCollector(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return listingHandlerFixtures{
		handler: NewListingHandler(uc, collector, logger),
		uc:      uc,
	}
}

// newActionContext builds an echo context for a mutation request, optionally
// carrying a resolved session the way the auth middleware would.
func newActionContext(t *testing.T, method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(middleware.ContextKeySession, session)
		c.Set(middleware.ContextKeyUserID, session.UserID)
	}

	return c, rec
}

func decodeActionResult(t *testing.T, rec *httptest.ResponseRecorder) actionResult {
	t.Helper()

	var result actionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	return result
}

func TestListingHandler_Create_Success(t *testing.T) {
	fx := createTestListingHandler(t)

	session := &entity.Session{UserID: uuid.New()}
	body := `{"name":"Summer Market","description":"By the river","date":"2026-07-04","userId":"` + session.UserID.String() + `"}`
	c, rec := newActionContext(t, http.MethodPost, "/events", body, session)

	fx.uc.EXPECT().
		Create(mock.Anything, session, mock.MatchedBy(func(draft *entity.ListingDraft) bool {
			return draft.Kind == entity.ListingKindEvent && draft.Name == "Summer Market"
		})).
		Return(&entity.Listing{ID: uuid.New()}, nil)

	require.NoError(t, fx.handler.Create(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	result := decodeActionResult(t, rec)
	assert.Nil(t, result.Error)
	assert.True(t, result.Success)
}

func TestListingHandler_Create_BodyCannotOverrideKind(t *testing.T) {
	fx := createTestListingHandler(t)

	session := &entity.Session{UserID: uuid.New()}
	body := `{"kind":"event","name":"Old Town Hall"}`
	c, _ := newActionContext(t, http.MethodPost, "/sites", body, session)

	fx.uc.EXPECT().
		Create(mock.Anything, session, mock.MatchedBy(func(draft *entity.ListingDraft) bool {
			return draft.Kind == entity.ListingKindSite
		})).
		Return(&entity.Listing{ID: uuid.New()}, nil)

	require.NoError(t, fx.handler.Create(entity.ListingKindSite)(c))
}

func TestListingHandler_Create_ValidationFailureReportsFirstField(t *testing.T) {
	fx := createTestListingHandler(t)

	session := &entity.Session{UserID: uuid.New()}
	c, rec := newActionContext(t, http.MethodPost, "/events", `{"name":""}`, session)

	verr := &entity.ValidationError{}
	verr.Add("name", "Event title is required")
	verr.Add("description", "Description is required")

	fx.uc.EXPECT().
		Create(mock.Anything, session, mock.Anything).
		Return(nil, verr)

	require.NoError(t, fx.handler.Create(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeActionResult(t, rec)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Event title is required", *result.Error)
	assert.False(t, result.Success)
}

func TestListingHandler_Update_NotFoundEnvelope(t *testing.T) {
	fx := createTestListingHandler(t)

	id := uuid.New()
	c, rec := newActionContext(t, http.MethodPut, "/events/"+id.String(), `{"name":"New name"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	fx.uc.EXPECT().
		Update(mock.Anything, (*entity.Session)(nil), entity.ListingKindEvent, id, mock.Anything).
		Return(nil, domainerrors.ListingNotFound("event not found"))

	require.NoError(t, fx.handler.Update(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	result := decodeActionResult(t, rec)
	require.NotNil(t, result.Error)
	assert.Equal(t, "event not found", *result.Error)
	assert.False(t, result.Success)
}

func TestListingHandler_Update_InvalidID(t *testing.T) {
	fx := createTestListingHandler(t)

	c, rec := newActionContext(t, http.MethodPut, "/events/not-a-uuid", `{}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.Update(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeActionResult(t, rec)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Invalid listing ID", *result.Error)
}

func TestListingHandler_Delete_UnauthorizedEnvelope(t *testing.T) {
	fx := createTestListingHandler(t)

	id := uuid.New()
	session := &entity.Session{UserID: uuid.New()}
	c, rec := newActionContext(t, http.MethodDelete, "/sites/"+id.String(), "", session)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	fx.uc.EXPECT().
		Delete(mock.Anything, session, entity.ListingKindSite, id).
		Return(domainerrors.ErrUnauthorizedAction)

	require.NoError(t, fx.handler.Delete(entity.ListingKindSite)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	result := decodeActionResult(t, rec)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Unauthorized action", *result.Error)
}

func TestListingHandler_Delete_Success(t *testing.T) {
	fx := createTestListingHandler(t)

	id := uuid.New()
	session := &entity.Session{UserID: uuid.New()}
	c, rec := newActionContext(t, http.MethodDelete, "/events/"+id.String(), "", session)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	fx.uc.EXPECT().
		Delete(mock.Anything, session, entity.ListingKindEvent, id).
		Return(nil)

	require.NoError(t, fx.handler.Delete(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeActionResult(t, rec)
	assert.Nil(t, result.Error)
	assert.True(t, result.Success)
}

func TestListingHandler_NullBodyIsInvalid(t *testing.T) {
	// `null` is syntactically valid JSON and binds without error, leaving the
	// target pointer nil. Every binding mutation endpoint must answer with
	// the action envelope instead of dereferencing it.
	session := &entity.Session{UserID: uuid.New()}
	id := uuid.New()

	tests := []struct {
		name string
		call func(t *testing.T, fx listingHandlerFixtures) *httptest.ResponseRecorder
	}{
		{
			name: "create",
			call: func(t *testing.T, fx listingHandlerFixtures) *httptest.ResponseRecorder {
				c, rec := newActionContext(t, http.MethodPost, "/events", `null`, session)
				require.NoError(t, fx.handler.Create(entity.ListingKindEvent)(c))

				return rec
			},
		},
		{
			name: "update",
			call: func(t *testing.T, fx listingHandlerFixtures) *httptest.ResponseRecorder {
				c, rec := newActionContext(t, http.MethodPut, "/events/"+id.String(), `null`, session)
				c.SetParamNames("id")
				c.SetParamValues(id.String())
				require.NoError(t, fx.handler.Update(entity.ListingKindEvent)(c))

				return rec
			},
		},
		{
			name: "validate",
			call: func(t *testing.T, fx listingHandlerFixtures) *httptest.ResponseRecorder {
				c, rec := newActionContext(t, http.MethodPost, "/listings/validate", `null`, session)
				require.NoError(t, fx.handler.Validate(c))

				return rec
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingHandler(t)

			// The usecase must never be reached with a nil body.
			rec := tt.call(t, fx)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			result := decodeActionResult(t, rec)
			require.NotNil(t, result.Error)
			assert.Equal(t, "Invalid request body", *result.Error)
			assert.False(t, result.Success)
		})
	}
}

func TestListingHandler_Create_UnknownErrorIsGeneric(t *testing.T) {
	fx := createTestListingHandler(t)

	session := &entity.Session{UserID: uuid.New()}
	c, rec := newActionContext(t, http.MethodPost, "/events", `{"name":"x"}`, session)

	fx.uc.EXPECT().
		Create(mock.Anything, session, mock.Anything).
		Return(nil, assert.AnError)

	require.NoError(t, fx.handler.Create(entity.ListingKindEvent)(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	result := decodeActionResult(t, rec)
	require.NotNil(t, result.Error)
	assert.Equal(t, "Internal server error", *result.Error)
}

func TestListingHandler_Validate_DryRun(t *testing.T) {
	fx := createTestListingHandler(t)

	t.Run("valid draft", func(t *testing.T) {
		c, rec := newActionContext(t, http.MethodPost, "/listings/validate", `{"kind":"event","name":"x"}`, nil)

		fx.uc.EXPECT().
			ValidateDraft(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		require.NoError(t, fx.handler.Validate(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeActionResult(t, rec).Success)
	})

	t.Run("invalid draft", func(t *testing.T) {
		c, rec := newActionContext(t, http.MethodPost, "/listings/validate", `{"kind":"site"}`, nil)

		verr := &entity.ValidationError{}
		verr.Add("tagline", "Tagline is required")

		fx.uc.EXPECT().
			ValidateDraft(mock.Anything, mock.Anything).
			Return(verr).
			Once()

		require.NoError(t, fx.handler.Validate(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		result := decodeActionResult(t, rec)
		require.NotNil(t, result.Error)
		assert.Equal(t, "Tagline is required", *result.Error)
	})
}

func TestListingHandler_Get_InvalidIDIsNotFound(t *testing.T) {
	fx := createTestListingHandler(t)

	c, rec := newActionContext(t, http.MethodGet, "/listings/nope", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, fx.handler.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListingHandler_ShareQRCode_RespondsWithPNG(t *testing.T) {
	fx := createTestListingHandler(t)

	id := uuid.New()
	c, rec := newActionContext(t, http.MethodGet, "/listings/"+id.String()+"/qrcode?size=128", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.QueryParams().Set("size", "128")

	fx.uc.EXPECT().
		ShareQRCode(mock.Anything, id, 128).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	require.NoError(t, fx.handler.ShareQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
