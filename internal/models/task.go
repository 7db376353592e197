package models

// Task is one resolved unit of generation work: a fully rendered prompt
// bound to a role, plus free-text guidance describing the expected output.
// Tasks have no identity beyond their content; they are consumed by a single
// pipeline run and discarded.
type Task struct {
	// Label names the stage for progress events, prior-output threading,
	// and transcripts (e.g. "context analysis").
	Label string

	Description    string
	ExpectedOutput string

	// SearchQuery is issued against the search capability before generation
	// when the role carries it. Empty means no search.
	SearchQuery string

	Role Role
}

// StageOutput is the labeled text a completed stage produced. Later stages
// receive the outputs of all prior stages as explicit inputs.
type StageOutput struct {
	Label    string `json:"label"`
	RoleName string `json:"role"`
	Text     string `json:"text"`
}

// Document is a supporting document after ingestion: a name plus the
// extracted (not yet truncated) text content.
type Document struct {
	Name    string
	Content string
}
