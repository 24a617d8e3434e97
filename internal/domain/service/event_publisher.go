package service

import (
	"context"

	"github.com/google/uuid"

	"herenow/internal/domain/entity"
)

// ListingEventAction names the lifecycle transition being announced.
type ListingEventAction string

const (
	ListingCreated ListingEventAction = "listing.created"
	ListingUpdated ListingEventAction = "listing.updated"
	ListingDeleted ListingEventAction = "listing.deleted"
)

// ListingEvent is the message published after a listing mutation commits.
type ListingEvent struct {
	Action    ListingEventAction `json:"action"`
	ListingID uuid.UUID          `json:"listingId"`
	Kind      entity.ListingKind `json:"kind"`
	UserID    uuid.UUID          `json:"userId"`
	Name      string             `json:"name"`
}

// EventPublisher announces listing lifecycle events to interested consumers.
// Publishing is best-effort; a failed publish never fails the mutation.
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, event *ListingEvent) error
	Close() error
}
