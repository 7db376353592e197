// Package roles defines the fixed set of generation personas used by the
// preparation pipeline and its ancillary tasks.
package roles

import (
	"fmt"

	"github.com/spboyer/meetprep/internal/models"
)

// Canonical role names. The six pipeline roles run in this order; the
// rehearsal coach and follow-up partner are additionally reused by the
// ancillary one-shot tasks.
const (
	ContextSpecialist = "Meeting Context Specialist"
	IndustryAnalyst   = "Industry Expert"
	Strategist        = "Meeting Strategist"
	BriefSynthesizer  = "Communication Specialist"
	RehearsalCoach    = "Executive Rehearsal Coach"
	FollowUpPartner   = "Post-Meeting Activation Partner"
)

// Registry holds the six roles for a session. Roles are immutable once the
// registry is built; the generation parameters are shared by all of them.
type Registry struct {
	roles map[string]models.Role
	order []string
}

// NewRegistry builds the fixed role set with the session's generation
// parameters. Only the context specialist and industry analyst are granted
// the search capability.
func NewRegistry(params models.GenerationParams) *Registry {
	defs := []models.Role{
		{
			Name:        ContextSpecialist,
			Goal:        "Analyze and summarize key background information for the meeting",
			Backstory:   "You are an expert at quickly understanding complex business contexts and identifying critical information.",
			AllowSearch: true,
		},
		{
			Name:        IndustryAnalyst,
			Goal:        "Provide in-depth industry analysis and identify key trends",
			Backstory:   "You are a seasoned industry analyst with a knack for spotting emerging trends and opportunities.",
			AllowSearch: true,
		},
		{
			Name:      Strategist,
			Goal:      "Develop a tailored meeting strategy and detailed agenda",
			Backstory: "You are a master meeting planner, known for creating highly effective strategies and agendas.",
		},
		{
			Name:      BriefSynthesizer,
			Goal:      "Synthesize information into concise and impactful briefings",
			Backstory: "You are an expert communicator, skilled at distilling complex information into clear, actionable insights.",
		},
		{
			Name:      RehearsalCoach,
			Goal:      "Simulate the meeting experience and stress-test positioning",
			Backstory: "You facilitate realistic rehearsals, crafting likely objections and guiding executives on confident responses.",
		},
		{
			Name:      FollowUpPartner,
			Goal:      "Translate insights into action items, follow-ups, and enablement assets",
			Backstory: "You ensure every meeting converts into momentum with crisply defined next steps and communication plans.",
		},
	}

	r := &Registry{roles: make(map[string]models.Role, len(defs))}
	for _, def := range defs {
		def.Params = params
		r.roles[def.Name] = def
		r.order = append(r.order, def.Name)
	}
	return r
}

// Get looks up a role by name.
func (r *Registry) Get(name string) (models.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return models.Role{}, fmt.Errorf("unknown role %q", name)
	}
	return role, nil
}

// MustGet looks up a role that is known to exist. It panics on a bad name,
// which only happens on a programming error in the fixed role set.
func (r *Registry) MustGet(name string) models.Role {
	role, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return role
}

// All returns the roles in pipeline order.
func (r *Registry) All() []models.Role {
	out := make([]models.Role, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.roles[name])
	}
	return out
}
