package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"messenger-service/internal/mocks"
	"messenger-service/internal/telemetry"
)

func TestEmitPublishesEnvelope(t *testing.T) {
	publisher := new(mocks.PublisherMock)
	emitter := telemetry.NewAuditEmitter(publisher, "audit.messenger", "messenger-service", "test")

	userID := int64(4)
	publisher.On("Publish", mock.Anything, "audit.messenger", mock.MatchedBy(func(event any) bool {
		envelope, ok := event.(telemetry.AuditEnvelope)
		if !ok {
			return false
		}
		return envelope.EventType == "audit_log" &&
			envelope.Payload.Level == "INFO" &&
			envelope.Payload.Text == "User logged in" &&
			envelope.RequestID == "req-1" &&
			envelope.UserID != nil && *envelope.UserID == 4
	})).Return(nil).Once()

	emitter.Emit(context.Background(), "INFO", "User logged in", "req-1", "10.0.0.1", &userID)

	publisher.AssertExpectations(t)
}

func TestEmitNilEmitterIsSafe(t *testing.T) {
	var emitter *telemetry.AuditEmitter
	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), "INFO", "noop", "", "", nil)
	})
}
