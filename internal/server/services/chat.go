package services

import (
	"context"
	"fmt"

	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/llm"
)

const chatPromptFmt = "You are AquaBot, an expert on water sanitation and cleaning. " +
	"Answer the user's question clearly and accurately with practical and reliable information.\n\n" +
	"User's Question: %s\n" +
	"Answer:"

// ChatService answers water-safety questions by forwarding each prompt to
// the completion upstream with a fixed expert instruction. Every question is
// independent; no history is kept.
type ChatService struct {
	client llm.Client
}

// NewChatService constructs a ChatService over the given upstream client.
func NewChatService(client llm.Client) *ChatService {
	return &ChatService{client: client}
}

// Ask returns the upstream's reply to a single question.
func (s *ChatService) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is required", common.ErrorValidation)
	}
	return s.client.Ask(ctx, fmt.Sprintf(chatPromptFmt, prompt))
}
