package llm

import "context"

// Provider is the completion oracle abstraction. It is non-deterministic
// and fallible; callers validate everything before persisting.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the oracle.
type Request struct {
	// System sets the oracle's role and constraints.
	System string

	// Messages is the conversation. Every call in this codebase is
	// single-turn, so this holds one user message.
	Messages []Message

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// JSONOutput asks the backend for a single JSON value using its
	// native JSON mode. Callers must still run CleanJSON on the response:
	// some backends wrap the value in a markdown fence regardless.
	JSONOutput bool
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the oracle's output.
type Response struct {
	Content string
	Usage   Usage
	Model   string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a backend model ID,
// passing unknown names through unchanged.
func resolveModel(name string, known map[string]string) string {
	if id, ok := known[name]; ok {
		return id
	}
	return name
}
