package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	chat        *genai.Chat
}

const defaultModel = "gemini-2.5-flash"

// NewAccountant returns an expert seeded with the rendered capital gains
// report, so questions can refer to its rows and totals.
func NewAccountant(report string) *Expert {
	instruction := `You are an accountant assistant for an Australian capital gains
report produced by FIFO lot matching. Answer questions about the report below.
Be precise about which buy lot each row comes from, and never invent rows or
amounts that are not in the report. This is not tax advice.

` + report

	return &Expert{
		Name:        "accountant",
		Description: "Answers questions about the generated capital gains report.",
		ModelName:   defaultModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: instruction}},
			},
		},
	}
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}
