// Package llm wraps the Gemini generative-language SDK behind a small
// typed surface so callers never touch the loosely-typed SDK schema
// objects directly.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Role tags a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one replayed history entry.
type Turn struct {
	Role Role
	Text string
}

// Attachment is an inline binary part of the current turn.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// PropertySchema describes one declared tool parameter.
type PropertySchema struct {
	Description string
	Enum        []string
}

// FunctionDeclaration is a capability offered to the model. All
// parameters are strings, optionally constrained to an enum.
type FunctionDeclaration struct {
	Name        string
	Description string
	Properties  map[string]PropertySchema
	Required    []string
}

// Request is one grounded round-trip: system instruction, prior turns,
// current text and/or attachment, and the declared capabilities.
type Request struct {
	SystemInstruction string
	History           []Turn
	Text              string
	Attachment        *Attachment
	Tools             []FunctionDeclaration
}

// FunctionCall is a structured capability invocation emitted by the
// model alongside (or instead of) free text.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Response carries the model reply: free text plus zero or more
// capability invocations in emission order.
type Response struct {
	Text          string
	FunctionCalls []FunctionCall
}

// GeminiClient dispatches requests to the hosted Gemini service. A
// fresh SDK client is opened per call; there is no connection state to
// keep between turns because the full history is replayed every time.
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGeminiClient builds a client for the given credential and model.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, model: model}
}

// Generate performs one round-trip with the service.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	}
	if len(req.Tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: toSDKDeclarations(req.Tools)}}
	}

	session := model.StartChat()
	session.History = toSDKHistory(req.History)

	parts := make([]genai.Part, 0, 2)
	if req.Text != "" {
		parts = append(parts, genai.Text(req.Text))
	}
	if req.Attachment != nil {
		parts = append(parts, genai.Blob{MIMEType: req.Attachment.MIMEType, Data: req.Attachment.Data})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty request: no text and no attachment")
	}

	resp, err := session.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini send: %w", err)
	}
	return fromSDKResponse(resp)
}

func toSDKDeclarations(tools []FunctionDeclaration) []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Properties))
		for name, p := range t.Properties {
			props[name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: p.Description,
				Enum:        p.Enum,
			}
		}
		out = append(out, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   t.Required,
			},
		})
	}
	return out
}

func toSDKHistory(history []Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		out = append(out, &genai.Content{
			Role:  string(turn.Role),
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return out
}

func fromSDKResponse(resp *genai.GenerateContentResponse) (*Response, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	out := &Response{}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			out.Text += string(v)
		case genai.FunctionCall:
			out.FunctionCalls = append(out.FunctionCalls, FunctionCall{Name: v.Name, Args: v.Args})
		}
	}
	return out, nil
}
