package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"herenow/internal/delivery/http/middleware"
	"herenow/internal/delivery/http/response"
	"herenow/internal/domain/entity"
	domainerrors "herenow/internal/domain/errors"
	"herenow/internal/metrics"
	"herenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for event and site handlers. Mutations
// answer with the {error, success} action envelope; reads use the generic
// response envelope.
type ListingHandler struct {
	uc        usecase.ListingUsecase
	collector metrics.MetricsCollector
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, collector metrics.MetricsCollector, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:        uc,
		collector: collector,
		logger:    logger,
	}
}

// Create returns the creation handler for one listing kind. The kind comes
// from the route, never from the body.
func (h *ListingHandler) Create(kind entity.ListingKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var draft *entity.ListingDraft
		// A body of `null` binds without error but leaves the draft nil.
		if err := c.Bind(&draft); err != nil || draft == nil {
			return h.actionError(c, "create", kind, errInvalidBody)
		}
		draft.Kind = kind

		session := middleware.SessionFromContext(c)
		if _, err := h.uc.Create(c.Request().Context(), session, draft); err != nil {
			return h.actionError(c, "create", kind, err)
		}

		h.collector.RecordListingAction("create", string(kind), "success")

		return response.ActionSuccess(c, http.StatusCreated)
	}
}

// Update returns the update handler for one listing kind. Absent fields in
// the body keep their stored values.
func (h *ListingHandler) Update(kind entity.ListingKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return h.actionError(c, "update", kind, errInvalidID)
		}

		var patch *entity.ListingPatch
		if err := c.Bind(&patch); err != nil || patch == nil {
			return h.actionError(c, "update", kind, errInvalidBody)
		}

		session := middleware.SessionFromContext(c)
		if _, err := h.uc.Update(c.Request().Context(), session, kind, id, patch); err != nil {
			return h.actionError(c, "update", kind, err)
		}

		h.collector.RecordListingAction("update", string(kind), "success")

		return response.ActionSuccess(c, http.StatusOK)
	}
}

// Delete returns the deletion handler for one listing kind.
func (h *ListingHandler) Delete(kind entity.ListingKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return h.actionError(c, "delete", kind, errInvalidID)
		}

		session := middleware.SessionFromContext(c)
		if err := h.uc.Delete(c.Request().Context(), session, kind, id); err != nil {
			return h.actionError(c, "delete", kind, err)
		}

		h.collector.RecordListingAction("delete", string(kind), "success")

		return response.ActionSuccess(c, http.StatusOK)
	}
}

// Validate runs draft validation without persisting anything, so the client
// wizard can surface the first failing field before submission.
func (h *ListingHandler) Validate(c echo.Context) error {
	var draft *entity.ListingDraft
	if err := c.Bind(&draft); err != nil || draft == nil {
		return response.ActionFailure(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.uc.ValidateDraft(c.Request().Context(), draft); err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			return response.ActionFailure(c, http.StatusBadRequest, validationErr.First())
		}

		return errors.WithStack(err)
	}

	return response.ActionSuccess(c, http.StatusOK)
}

// Get returns a single listing with its media.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Resource not found")
	}

	listing, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing retrieved successfully")
}

// Timeline returns listings newest first, optionally filtered by kind or owner.
func (h *ListingHandler) Timeline(c echo.Context) error {
	input := &usecase.TimelineInput{}

	if kindParam := c.QueryParam("kind"); kindParam != "" {
		kind := entity.ListingKind(kindParam)
		if !kind.Valid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown listing kind")
		}
		input.Kind = &kind
	}

	if userParam := c.QueryParam("userId"); userParam != "" {
		userID, err := uuid.Parse(userParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID filter")
		}
		input.UserID = &userID
	}

	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	input.Offset, _ = strconv.Atoi(c.QueryParam("offset"))

	listings, err := h.uc.Timeline(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Timeline retrieved successfully")
}

// ShareQRCode renders the listing's share link as a PNG QR code.
func (h *ListingHandler) ShareQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Resource not found")
	}

	size, _ := strconv.Atoi(c.QueryParam("size"))

	png, err := h.uc.ShareQRCode(c.Request().Context(), id, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// actionError maps a failed mutation onto the action envelope. Validation
// failures surface only the first field's message; application errors keep
// their user-facing message; anything else becomes a generic failure.
func (h *ListingHandler) actionError(c echo.Context, action string, kind entity.ListingKind, err error) error {
	h.collector.RecordListingAction(action, string(kind), "failure")

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		return response.ActionFailure(c, http.StatusBadRequest, validationErr.First())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.ActionFailure(c, appErr.HTTPCode(), appErr.Message())
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if message, ok := httpErr.Message.(string); ok {
			return response.ActionFailure(c, httpErr.Code, message)
		}

		return response.ActionFailure(c, httpErr.Code, http.StatusText(httpErr.Code))
	}

	h.logger.Error("Unhandled listing action error",
		"action", action,
		"kind", string(kind),
		"error", err.Error(),
	)

	return response.ActionFailure(c, http.StatusInternalServerError, "Internal server error")
}

var (
	errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidID   = echo.NewHTTPError(http.StatusBadRequest, "Invalid listing ID")
)
