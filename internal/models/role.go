package models

// GenerationParams holds the model settings shared by every role in a
// session. They are bound once when the role registry is built.
type GenerationParams struct {
	ModelID     string  `yaml:"model" json:"model_id"`
	Temperature float64 `yaml:"temperature" json:"temperature"`
}

// Role is a named generation persona. Roles are immutable once constructed;
// several tasks may reference the same role.
type Role struct {
	Name      string
	Goal      string
	Backstory string

	// AllowSearch grants the role the live web-search capability.
	AllowSearch bool

	Params GenerationParams
}

// SystemPrompt renders the persona preamble sent to the generation backend.
func (r Role) SystemPrompt() string {
	return "You are " + r.Name + ". Your goal: " + r.Goal + "\nBackstory: " + r.Backstory
}
