package sdk

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Agent tool parameters.
const (
	// ToolName is the function name exposed to the model.
	ToolName = "site_search"
	// ToolDefaultLimit applies when the model omits limit.
	ToolDefaultLimit = 5
	// ToolMaxLimit caps what the model may request.
	ToolMaxLimit = 25
)

// Tool exposes the federated search as an OpenAI function tool so a chat
// integration can let the model search the site.
type Tool struct {
	client *Client
}

// NewTool creates a search tool backed by the given API client.
func NewTool(client *Client) *Tool {
	return &Tool{client: client}
}

// Definition returns the tool schema for a chat completion request.
func (t *Tool) Definition() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        ToolName,
			Description: "Search the site's jobs, events, news, and units for relevant content.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"query": {
						Type:        jsonschema.String,
						Description: "Free-text search query.",
					},
					"indices": {
						Type:        jsonschema.Array,
						Description: "Content types to search; omit to search everything.",
						Items: &jsonschema.Definition{
							Type: jsonschema.String,
							Enum: []string{"jobs", "events", "news", "units"},
						},
					},
					"limit": {
						Type:        jsonschema.Integer,
						Description: fmt.Sprintf("Maximum results (default %d, max %d).", ToolDefaultLimit, ToolMaxLimit),
					},
					"locale": {
						Type:        jsonschema.String,
						Description: "Two-letter language code, e.g. en or no.",
					},
				},
				Required: []string{"query"},
			},
		},
	}
}

// ToolResultItem is a single hit in the agent-facing summary.
type ToolResultItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
	Index       string `json:"index"`
}

// ToolResult is the agent-facing response: the hits plus a human-readable
// count summary in the caller's language.
type ToolResult struct {
	Results      []ToolResultItem `json:"results"`
	TotalResults int              `json:"totalResults"`
	Message      string           `json:"message"`
}

type toolArgs struct {
	Query   string   `json:"query"`
	Indices []string `json:"indices"`
	Limit   int      `json:"limit"`
	Locale  string   `json:"locale"`
}

// Invoke executes a tool call with the model-supplied JSON arguments.
func (t *Tool) Invoke(ctx context.Context, arguments string) (ToolResult, error) {
	var args toolArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return ToolResult{}, fmt.Errorf("parse tool arguments: %w", err)
	}

	limit := args.Limit
	if limit <= 0 {
		limit = ToolDefaultLimit
	}
	if limit > ToolMaxLimit {
		limit = ToolMaxLimit
	}

	resp, err := t.client.Search(ctx, SearchParams{
		Query:   args.Query,
		Indices: args.Indices,
		Limit:   limit,
		Locale:  args.Locale,
	})
	if err != nil {
		return ToolResult{}, fmt.Errorf("tool search: %w", err)
	}

	items := make([]ToolResultItem, len(resp.Results))
	for i, r := range resp.Results {
		items[i] = ToolResultItem{
			Title:       r.Title,
			Description: r.Description,
			Href:        r.Href,
			Index:       r.Index,
		}
	}

	return ToolResult{
		Results:      items,
		TotalResults: len(items),
		Message:      countMessage(len(items), args.Locale),
	}, nil
}

// countMessage renders the result-count summary in the caller's language.
func countMessage(n int, locale string) string {
	if locale == "no" {
		return fmt.Sprintf("Fant %d relevante resultater på nettsiden.", n)
	}
	return fmt.Sprintf("Found %d relevant results on the site.", n)
}
