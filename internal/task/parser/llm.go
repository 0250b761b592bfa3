package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"daily-task-agent/pkg/gemini"
	"daily-task-agent/pkg/llmprovider"
	"daily-task-agent/pkg/log"
)

// Generator is the completion capability the LLM parser needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type llmParser struct {
	gen Generator
	l   log.Logger
}

// NewLLM returns a parser backed by the external completion service.
func NewLLM(gen Generator, l log.Logger) Parser {
	return &llmParser{gen: gen, l: l}
}

// llmTask is the wire shape of a reply. Fields not listed are dropped.
type llmTask struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DueDate         string   `json:"due_date"`
	DurationMinutes flexInt  `json:"duration_minutes"`
	Tags            flexTags `json:"tags"`
	PriorityHint    string   `json:"priority_hint"`
}

func (p *llmParser) Parse(ctx context.Context, text string) (ParsedTask, error) {
	req := llmprovider.NewTextRequest(gemini.BuildIntakePrompt(text), gemini.IntakeMaxOutputTokens)

	resp, err := p.gen.GenerateContent(ctx, req)
	if err != nil {
		return ParsedTask{}, fmt.Errorf("completion request failed: %w", err)
	}

	reply := resp.Text()
	if strings.TrimSpace(reply) == "" {
		return ParsedTask{}, ErrEmptyReply
	}
	p.l.Debugf(ctx, "parser.llm reply: %s", reply)

	return decodeReply(reply)
}

// decodeReply parses the span from the first '{' to the last '}' of reply.
func decodeReply(reply string) (ParsedTask, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return ParsedTask{}, ErrNoJSONObject
	}
	raw := []byte(reply[start : end+1])

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return ParsedTask{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	if err := validateReply(generic); err != nil {
		return ParsedTask{}, err
	}

	var lt llmTask
	if err := json.Unmarshal(raw, &lt); err != nil {
		return ParsedTask{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}

	return ParsedTask{
		Title:           lt.Title,
		Description:     lt.Description,
		DueDate:         lt.DueDate,
		DurationMinutes: int(lt.DurationMinutes),
		Tags:            []string(lt.Tags),
		PriorityHint:    lt.PriorityHint,
	}, nil
}
