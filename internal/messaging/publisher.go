package messaging

import (
	"context"
	"fmt"

	"github.com/solforge/fairmint/internal/domain"
)

// SUBJECT_PREFIX prefixes every notification subject
const SUBJECT_PREFIX = "fairmint"

// Publisher defines the interface for publishing settlement notifications to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish publishes a notification to its subject
	Publish(ctx context.Context, notification *domain.Notification) error
	// Close closes the connection
	Close()
}

// Subject returns the subject a notification type is published on
// e.g. fairmint.burns.settled, fairmint.events.finalized
func Subject(t domain.NotificationType) string {
	switch t {
	case domain.NotificationTypeBurnSettled:
		return SUBJECT_PREFIX + ".burns.settled"
	case domain.NotificationTypeEventFinalized:
		return SUBJECT_PREFIX + ".events.finalized"
	case domain.NotificationTypeClaimRecorded:
		return SUBJECT_PREFIX + ".claims.recorded"
	default:
		return fmt.Sprintf("%s.%s", SUBJECT_PREFIX, t)
	}
}

// MessageID returns the broker deduplication ID of a notification
func MessageID(n *domain.Notification) string {
	return fmt.Sprintf("%s:%d:%s", n.Type, n.EventID, n.Reference)
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every notification, used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, *domain.Notification) error { return nil }

func (nopPublisher) Close() {}
