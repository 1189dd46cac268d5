package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	// Temperature nil leaves the provider default; zero is sent as zero.
	Temperature *float64
	MaxTokens   int

	// JSONMode asks the provider for a bare JSON document when it supports it.
	JSONMode bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	FinishReason FinishReason
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response content.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserMessage builds a single-part user message.
func UserMessage(text string) Message {
	return Message{Role: "user", Parts: []Part{{Text: text}}}
}

// SystemMessage builds a single-part system instruction.
func SystemMessage(text string) *Message {
	return &Message{Role: "system", Parts: []Part{{Text: text}}}
}
