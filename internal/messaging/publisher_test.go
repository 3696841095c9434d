package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solforge/fairmint/internal/domain"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		notificationType domain.NotificationType
		want             string
	}{
		{domain.NotificationTypeBurnSettled, "fairmint.burns.settled"},
		{domain.NotificationTypeEventFinalized, "fairmint.events.finalized"},
		{domain.NotificationTypeClaimRecorded, "fairmint.claims.recorded"},
		{"custom", "fairmint.custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.notificationType), func(t *testing.T) {
			assert.Equal(t, tt.want, Subject(tt.notificationType))
		})
	}
}

func TestMessageID(t *testing.T) {
	n := &domain.Notification{Type: domain.NotificationTypeBurnSettled, EventID: 7, Reference: "sig"}
	assert.Equal(t, "burn_settled:7:sig", MessageID(n))
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()
	assert.NoError(t, p.Publish(context.Background(), &domain.Notification{}))
	p.Close()
}
