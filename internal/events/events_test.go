package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingKeys(t *testing.T) {
	assert.Equal(t, "action.invitation.accepted", ActionEvent{Kind: "invitation", State: "accepted"}.RoutingKey())
	assert.Equal(t, "quiz.submitted", QuizSubmittedEvent{}.RoutingKey())
}

func TestRecorderAndNoOp(t *testing.T) {
	ctx := context.Background()

	rec := &Recorder{}
	assert.NoError(t, rec.Publish(ctx, ActionEvent{Kind: "request", State: "sent"}))
	assert.Len(t, rec.Events, 1)

	assert.NoError(t, NoOpPublisher{}.Publish(ctx, QuizSubmittedEvent{}))
	assert.NoError(t, NoOpPublisher{}.Close())
}
