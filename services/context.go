package services

import (
	"time"

	"speaker-bot/models"
)

// UpdateContext applies one turn to the conversation context and returns a
// new context; the input is never mutated. Rules:
//
//   - a newly detected service becomes current, joins the history (deduped)
//     and resets the depth to 1
//   - repeating the current service increments the depth, capped at 10
//   - no detection while a service is current still increments the depth:
//     the visitor is presumed to be continuing the same topic
//   - no detection and no current service changes nothing but the flow log
//
// Every turn appends one flow entry, keeping only the most recent 20.
func UpdateContext(prev *models.ConversationContext, detectedService, userMessage string) *models.ConversationContext {
	if prev == nil {
		prev = models.NewConversationContext()
	}
	next := prev.Clone()
	now := time.Now()

	switch {
	case detectedService != "" && detectedService != prev.CurrentService:
		next.CurrentService = detectedService
		if !next.HasDiscussed(detectedService) {
			next.ServiceHistory = append(next.ServiceHistory, detectedService)
		}
		next.ConversationDepth = 1
		next.LastServiceMention = now

	case detectedService != "":
		next.ConversationDepth = capDepth(next.ConversationDepth + 1)
		next.LastServiceMention = now

	case prev.CurrentService != "":
		next.ConversationDepth = capDepth(next.ConversationDepth + 1)
	}

	next.Flow = append(next.Flow, models.FlowEntry{
		Timestamp:       now,
		UserMessage:     Truncate(userMessage, models.MaxFlowMessageLen),
		DetectedService: detectedService,
		ContextService:  next.CurrentService,
	})
	if len(next.Flow) > models.MaxFlowEntries {
		next.Flow = next.Flow[len(next.Flow)-models.MaxFlowEntries:]
	}

	return next
}

func capDepth(depth int) int {
	if depth > models.MaxConversationDepth {
		return models.MaxConversationDepth
	}
	if depth < 0 {
		return 0
	}
	return depth
}
