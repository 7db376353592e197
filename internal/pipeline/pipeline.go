// Package pipeline executes a chain of generation tasks sequentially,
// threading each stage's output into the prompts of the stages that follow.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spboyer/meetprep/internal/engine"
	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/search"
)

// EventType identifies a progress event.
type EventType string

const (
	EventStageStarted   EventType = "stage_started"
	EventSearchStarted  EventType = "search_started"
	EventSearchSkipped  EventType = "search_skipped"
	EventStageCompleted EventType = "stage_completed"
	EventStageFailed    EventType = "stage_failed"
)

// ProgressEvent describes pipeline progress for UI layers.
type ProgressEvent struct {
	Type     EventType
	Label    string
	RoleName string
	Index    int // zero-based stage index
	Total    int
	Err      error // set on search_skipped and stage_failed
}

// ProgressListener receives progress events. May be nil.
type ProgressListener func(ProgressEvent)

// GenerationError reports which stage failed and why.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// StageOutcome records one completed stage.
type StageOutcome struct {
	Label      string `json:"label"`
	RoleName   string `json:"role"`
	ModelID    string `json:"model,omitempty"`
	Text       string `json:"text"`
	DurationMs int64  `json:"durationMs"`
}

// Outcome is the result of a full pipeline run.
type Outcome struct {
	Stages     []StageOutcome `json:"stages"`
	Document   string         `json:"document"`
	StartedAt  time.Time      `json:"startedAt"`
	DurationMs int64          `json:"durationMs"`
}

// Pipeline runs an ordered list of tasks against one engine.
type Pipeline struct {
	engine   engine.Engine
	tasks    []models.Task
	searcher search.Searcher
	listener ProgressListener
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSearcher enables live search for roles that allow it.
func WithSearcher(s search.Searcher) Option {
	return func(p *Pipeline) {
		p.searcher = s
	}
}

// WithListener registers a progress listener.
func WithListener(l ProgressListener) Option {
	return func(p *Pipeline) {
		p.listener = l
	}
}

// New creates a pipeline over the given tasks, executed in slice order.
func New(eng engine.Engine, tasks []models.Task, opts ...Option) *Pipeline {
	p := &Pipeline{engine: eng, tasks: tasks}
	for _, o := range opts {
		o(p)
	}
	return p
}

// One creates a single-task pipeline, used for the ancillary one-shot tasks.
func One(eng engine.Engine, task models.Task, opts ...Option) *Pipeline {
	return New(eng, []models.Task{task}, opts...)
}

func (p *Pipeline) emit(ev ProgressEvent) {
	if p.listener != nil {
		p.listener(ev)
	}
}

// Run executes all tasks in order. The first stage failure aborts the run
// and is returned as a *GenerationError; outputs of stages completed before
// the failure are discarded with it. Search failures are not fatal: the
// stage proceeds without snippets.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	start := time.Now()
	total := len(p.tasks)

	var prior []models.StageOutput
	outcome := &Outcome{StartedAt: start}

	for i, task := range p.tasks {
		p.emit(ProgressEvent{
			Type:     EventStageStarted,
			Label:    task.Label,
			RoleName: task.Role.Name,
			Index:    i,
			Total:    total,
		})

		digest := p.runSearch(ctx, i, total, task)

		req := &engine.GenerationRequest{
			Role:           task.Role,
			Description:    task.Description,
			ExpectedOutput: task.ExpectedOutput,
			Prior:          prior,
			SearchDigest:   digest,
		}

		resp, err := p.engine.Generate(ctx, req)
		if err != nil {
			genErr := &GenerationError{Stage: task.Label, Err: err}
			p.emit(ProgressEvent{
				Type:     EventStageFailed,
				Label:    task.Label,
				RoleName: task.Role.Name,
				Index:    i,
				Total:    total,
				Err:      genErr,
			})
			return nil, genErr
		}

		text := models.Normalize(resp.Text)
		prior = append(prior, models.StageOutput{
			Label:    task.Label,
			RoleName: task.Role.Name,
			Text:     text,
		})
		outcome.Stages = append(outcome.Stages, StageOutcome{
			Label:      task.Label,
			RoleName:   task.Role.Name,
			ModelID:    resp.ModelID,
			Text:       text,
			DurationMs: resp.DurationMs,
		})

		p.emit(ProgressEvent{
			Type:     EventStageCompleted,
			Label:    task.Label,
			RoleName: task.Role.Name,
			Index:    i,
			Total:    total,
		})
	}

	outcome.Document = ComposeDocument(outcome.Stages)
	outcome.DurationMs = time.Since(start).Milliseconds()
	return outcome, nil
}

// runSearch fetches live snippets for a task when the role permits it and a
// searcher is wired. Errors are downgraded to a skip event.
func (p *Pipeline) runSearch(ctx context.Context, index, total int, task models.Task) string {
	if p.searcher == nil || !task.Role.AllowSearch || task.SearchQuery == "" {
		return ""
	}

	p.emit(ProgressEvent{
		Type:     EventSearchStarted,
		Label:    task.Label,
		RoleName: task.Role.Name,
		Index:    index,
		Total:    total,
	})

	digest, err := p.searcher.Search(ctx, task.SearchQuery)
	if err != nil {
		slog.Warn("live search failed, continuing without snippets",
			"stage", task.Label, "error", err)
		p.emit(ProgressEvent{
			Type:     EventSearchSkipped,
			Label:    task.Label,
			RoleName: task.Role.Name,
			Index:    index,
			Total:    total,
			Err:      err,
		})
		return ""
	}
	return digest
}

// ComposeDocument renders completed stages as one markdown document with a
// heading per stage.
func ComposeDocument(stages []StageOutcome) string {
	var sb strings.Builder
	for i, stage := range stages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n%s", titleCase(stage.Label), stage.Text)
	}
	return sb.String()
}

func titleCase(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		if len(w) > 0 && w != "and" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
