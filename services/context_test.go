package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaker-bot/models"
)

func TestUpdateContext_NewServiceResetsDepth(t *testing.T) {
	ctx := UpdateContext(nil, "Leadership Development", "tell me about leadership development")

	assert.Equal(t, "Leadership Development", ctx.CurrentService)
	assert.Equal(t, 1, ctx.ConversationDepth)
	assert.Equal(t, []string{"Leadership Development"}, ctx.ServiceHistory)
	assert.False(t, ctx.LastServiceMention.IsZero())
	assert.Len(t, ctx.Flow, 1)
}

func TestUpdateContext_SameServiceDeepens(t *testing.T) {
	ctx := UpdateContext(nil, "Executive Coaching", "coaching?")
	ctx = UpdateContext(ctx, "Executive Coaching", "tell me more about coaching")

	assert.Equal(t, 2, ctx.ConversationDepth)
	assert.Equal(t, []string{"Executive Coaching"}, ctx.ServiceHistory)
}

func TestUpdateContext_SwitchResetsDepthAndAppendsHistory(t *testing.T) {
	ctx := UpdateContext(nil, "Leadership Development", "leadership development")
	ctx = UpdateContext(ctx, "Leadership Development", "more please")
	ctx = UpdateContext(ctx, "Leadership Development", "go on")
	require.Equal(t, 3, ctx.ConversationDepth)

	ctx = UpdateContext(ctx, "Team Building", "what about team building?")

	assert.Equal(t, "Team Building", ctx.CurrentService)
	assert.Equal(t, 1, ctx.ConversationDepth)
	assert.Equal(t, []string{"Leadership Development", "Team Building"}, ctx.ServiceHistory)
}

func TestUpdateContext_RevisitedServiceNotDuplicated(t *testing.T) {
	ctx := UpdateContext(nil, "Leadership Development", "leadership")
	ctx = UpdateContext(ctx, "Team Building", "team building")
	ctx = UpdateContext(ctx, "Leadership Development", "back to leadership")

	assert.Equal(t, "Leadership Development", ctx.CurrentService)
	assert.Equal(t, 1, ctx.ConversationDepth)
	assert.Equal(t, []string{"Leadership Development", "Team Building"}, ctx.ServiceHistory)
}

func TestUpdateContext_NoDetectionContinuesTopic(t *testing.T) {
	ctx := UpdateContext(nil, "Corporate Training", "training")
	ctx = UpdateContext(ctx, "", "how much does it cost?")

	assert.Equal(t, "Corporate Training", ctx.CurrentService)
	assert.Equal(t, 2, ctx.ConversationDepth)
}

func TestUpdateContext_NoDetectionNoTopicOnlyLogsFlow(t *testing.T) {
	ctx := UpdateContext(nil, "", "hello")

	assert.Empty(t, ctx.CurrentService)
	assert.Zero(t, ctx.ConversationDepth)
	assert.Empty(t, ctx.ServiceHistory)
	assert.Len(t, ctx.Flow, 1)
	assert.True(t, ctx.LastServiceMention.IsZero())
}

func TestUpdateContext_DepthCapped(t *testing.T) {
	var ctx *models.ConversationContext
	for i := 0; i < 15; i++ {
		ctx = UpdateContext(ctx, "Executive Coaching", "more")
	}

	assert.Equal(t, models.MaxConversationDepth, ctx.ConversationDepth)
}

func TestUpdateContext_FlowCappedAndTruncated(t *testing.T) {
	long := strings.Repeat("x", 150)

	var ctx *models.ConversationContext
	for i := 0; i < 25; i++ {
		ctx = UpdateContext(ctx, "", long)
	}

	assert.Len(t, ctx.Flow, models.MaxFlowEntries)
	for _, entry := range ctx.Flow {
		assert.Equal(t, models.MaxFlowMessageLen, len([]rune(entry.UserMessage)))
	}
}

func TestUpdateContext_FlowRecordsServices(t *testing.T) {
	ctx := UpdateContext(nil, "Team Building", "team building")
	ctx = UpdateContext(ctx, "", "sounds great")

	require.Len(t, ctx.Flow, 2)
	assert.Equal(t, "Team Building", ctx.Flow[0].DetectedService)
	assert.Equal(t, "Team Building", ctx.Flow[0].ContextService)
	assert.Empty(t, ctx.Flow[1].DetectedService)
	assert.Equal(t, "Team Building", ctx.Flow[1].ContextService)
}

func TestUpdateContext_DoesNotMutateInput(t *testing.T) {
	prev := UpdateContext(nil, "Keynote Speaking", "keynote")
	prevDepth := prev.ConversationDepth
	prevHistory := len(prev.ServiceHistory)
	prevFlow := len(prev.Flow)

	next := UpdateContext(prev, "Team Building", "team building")

	assert.Equal(t, prevDepth, prev.ConversationDepth)
	assert.Len(t, prev.ServiceHistory, prevHistory)
	assert.Len(t, prev.Flow, prevFlow)
	assert.Equal(t, "Keynote Speaking", prev.CurrentService)
	assert.NotSame(t, prev, next)
}
