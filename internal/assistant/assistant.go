package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/projection"
)

// Message is one turn of the chat history. Role is "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the text-generation collaborator: stateless per call, the
// caller supplies the full history every time.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []Message) (string, error)
}

// Assistant answers auction questions using a bounded snapshot of the
// catalog and the client's bids as context.
type Assistant struct {
	completer  Completer
	projection *projection.Service
}

// NewAssistant creates a new assistant instance
func NewAssistant(completer Completer, proj *projection.Service) *Assistant {
	return &Assistant{completer: completer, projection: proj}
}

// Chat produces the assistant's reply for a conversation. The snapshot is
// rebuilt on every call so the prompt reflects current listings.
func (a *Assistant) Chat(ctx context.Context, clientID string, history []Message) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("assistant: %w - empty message history", auctionerrors.ErrInvalidSpec)
	}

	snap, err := a.projection.Snapshot(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("assistant: failed to build context snapshot: %w", err)
	}

	reply, err := a.completer.Complete(ctx, BuildSystemPrompt(snap), history)
	if err != nil {
		return "", fmt.Errorf("assistant: completion failed: %w", err)
	}
	return reply, nil
}

// BuildSystemPrompt renders the snapshot into the assistant's system prompt
func BuildSystemPrompt(snap projection.Snapshot) string {
	var b strings.Builder
	b.WriteString("You are Ruedin, an assistant specialized in car auctions and sales.\n\n")

	b.WriteString("Client information: ")
	if snap.Client != nil {
		writeJSON(&b, snap.Client)
	} else {
		b.WriteString("no client information available")
	}
	b.WriteString("\n\nCars available for auction: ")
	writeJSON(&b, snap.Cars)

	b.WriteString("\n\nClient's bids: ")
	writeJSON(&b, snap.Bids)

	b.WriteString("\n\nUse this information to give personalized answers about the cars, " +
		"the client's bids and the auction process. Be friendly and professional, and " +
		"offer useful recommendations based on the available data. If asked about " +
		"specific cars or bids, use the information provided. If you do not have the " +
		"requested information, suggest checking the corresponding section of the " +
		"application or contacting support.")
	return b.String()
}

func writeJSON(b *strings.Builder, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		b.WriteString("unavailable")
		return
	}
	b.Write(data)
}
