// Package prompts renders the task descriptions for the six-stage
// preparation pipeline and the ancillary one-shot tasks. Descriptions are
// fully resolved at construction time from the meeting inputs, the shared
// context block, and the active directives.
package prompts

import (
	"fmt"

	"github.com/spboyer/meetprep/internal/models"
	"github.com/spboyer/meetprep/internal/roles"
)

// Stage labels, in execution order.
const (
	LabelContextAnalysis  = "context analysis"
	LabelIndustryAnalysis = "industry analysis"
	LabelStrategy         = "strategy and agenda"
	LabelExecutiveBrief   = "executive brief"
	LabelRehearsal        = "rehearsal simulation"
	LabelFollowUp         = "follow-up activation"
)

// Inputs are the static user inputs that parameterize every template.
type Inputs struct {
	Company         string
	Objective       string
	Attendees       string
	DurationMinutes int
	FocusAreas      string
	Personas        string
	RehearsalFocus  string
	FollowupChans   string
}

// Context carries the derived text blocks shared across stages.
type Context struct {
	Shared     string // document digest + historical notes
	Digest     string // document digest alone
	Directives string // bulleted directive list
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// PipelineTasks builds the six tasks of the main chain in fixed order.
func PipelineTasks(reg *roles.Registry, in Inputs, cc Context) []models.Task {
	return []models.Task{
		contextAnalysisTask(reg, in, cc),
		industryAnalysisTask(reg, in, cc),
		strategyTask(reg, in),
		executiveBriefTask(reg, in, cc),
		rehearsalTask(reg, in),
		followUpTask(reg, in),
	}
}

func contextAnalysisTask(reg *roles.Registry, in Inputs, cc Context) models.Task {
	desc := fmt.Sprintf(`Analyze the context for the meeting with %[1]s, considering:
1. The meeting objective: %[2]s
2. The attendees: %[3]s
3. The meeting duration: %[4]d minutes
4. Specific focus areas or concerns: %[5]s

Directives to prioritize:
%[6]s

Reference the following shared materials:
%[7]s

Research %[1]s thoroughly, including:
1. Recent news and press releases (refresh if new headlines are available)
2. Key products or services
3. Major competitors and differentiators

Provide a comprehensive summary of your findings, highlighting the most relevant information for the meeting context.
Format output using markdown with clear headings and subheadings.`,
		in.Company, in.Objective, in.Attendees, in.DurationMinutes, in.FocusAreas, cc.Directives, cc.Shared)

	return models.Task{
		Label:          LabelContextAnalysis,
		Description:    desc,
		ExpectedOutput: "Detailed meeting context analysis covering company background, latest developments, and insights tied to the objective.",
		SearchQuery:    fmt.Sprintf("%s recent news and press releases", in.Company),
		Role:           reg.MustGet(roles.ContextSpecialist),
	}
}

func industryAnalysisTask(reg *roles.Registry, in Inputs, cc Context) models.Task {
	desc := fmt.Sprintf(`Based on the context analysis for %[1]s and the meeting objective: %[2]s, provide an in-depth industry analysis:
1. Identify key trends and developments in the industry
2. Analyze the competitive landscape and challenger approaches
3. Highlight potential opportunities and threats for the meeting sponsor
4. Provide insights on market positioning compared to peers

Supporting materials to infuse:
%[3]s

Ensure the analysis is relevant to the meeting objective and attendees' roles.
Format output using markdown with appropriate headings and subheadings.`,
		in.Company, in.Objective, cc.Digest)

	return models.Task{
		Label:          LabelIndustryAnalysis,
		Description:    desc,
		ExpectedOutput: "Comprehensive industry analysis aligned to the meeting goal, emphasizing opportunities, risks, and differentiation.",
		SearchQuery:    fmt.Sprintf("%s industry trends competitive landscape", in.Company),
		Role:           reg.MustGet(roles.IndustryAnalyst),
	}
}

func strategyTask(reg *roles.Registry, in Inputs) models.Task {
	desc := fmt.Sprintf(`Using the context analysis and industry insights, develop a tailored meeting strategy and detailed agenda for the %[1]d-minute meeting with %[2]s. Include:
1. A time-boxed agenda with clear objectives for each section
2. Key talking points for each agenda item, connected to both business value and risk mitigation
3. Suggested speakers or leaders for each section, mapped to %[3]s
4. Potential discussion topics and questions to drive the conversation
5. Strategies to address the specific focus areas and concerns: %[4]s
6. Personalization cues leveraging attendee personas: %[5]s

Ensure the strategy and agenda align with the meeting objective: %[6]s
Format output using markdown with appropriate headings and subheadings.`,
		in.DurationMinutes, in.Company, in.Attendees, in.FocusAreas,
		orDefault(in.Personas, "No persona insights provided."), in.Objective)

	return models.Task{
		Label:          LabelStrategy,
		Description:    desc,
		ExpectedOutput: "Detailed meeting strategy and time-boxed agenda mapping objectives to owners, talking points, and success signals.",
		Role:           reg.MustGet(roles.Strategist),
	}
}

func executiveBriefTask(reg *roles.Registry, in Inputs, cc Context) models.Task {
	desc := fmt.Sprintf(`Synthesize all gathered information into a comprehensive executive brief for the meeting with %[1]s. Create the following components:

1. A detailed one-page executive summary including:
   - Clear statement of the meeting objective
   - List of key attendees and their roles
   - Critical background points about %[1]s and relevant industry context
   - Top 3-5 strategic goals for the meeting, aligned with the objective
   - Brief overview of the meeting structure and key topics to be covered

2. An in-depth list of key talking points, each supported by:
   - Relevant data or statistics
   - Specific examples or case studies
   - Connection to the company's current situation or challenges

3. Anticipate and prepare for potential questions:
   - List likely questions from attendees based on their roles and the meeting objective
   - Craft thoughtful, data-driven responses to each question

4. Strategic recommendations and next steps:
   - Provide 3-5 actionable recommendations based on the analysis
   - Outline clear next steps for implementation or follow-up
   - Suggest timelines or deadlines for key actions
   - Identify potential challenges or roadblocks and propose mitigation strategies

Ensure the brief is comprehensive yet concise, highly actionable, and precisely aligned with the meeting objective: %[2]s. The document should be structured for easy navigation and quick reference during the meeting. Integrate the shared materials below when relevant:
%[3]s`,
		in.Company, in.Objective, cc.Shared)

	return models.Task{
		Label:          LabelExecutiveBrief,
		Description:    desc,
		ExpectedOutput: "Executive-ready brief including summary, key talking points, risk mitigation, and strategic recommendations.",
		Role:           reg.MustGet(roles.BriefSynthesizer),
	}
}

func rehearsalTask(reg *roles.Registry, in Inputs) models.Task {
	desc := fmt.Sprintf(`Facilitate a rehearsal simulation for the meeting with %[1]s. Deliver:
1. A scripted dry-run agenda with prompts for each speaker
2. Persona-driven objections or tough questions informed by %[2]s and the focus areas: %[3]s
3. Suggested high-confidence responses grounded in the research generated so far
4. Coaching tips on body language, tone, and supporting assets
5. Scenario branches for unexpected pivots. Prioritize the following rehearsal focus:
   %[4]s

Reference the broader preparation outputs so the rehearsal reflects the planned meeting arc.`,
		in.Company, in.Attendees, in.FocusAreas,
		orDefault(in.RehearsalFocus, "No additional simulation requests provided."))

	return models.Task{
		Label:          LabelRehearsal,
		Description:    desc,
		ExpectedOutput: "Simulation guide featuring persona-based Q&A, objection handling, and coaching cues.",
		Role:           reg.MustGet(roles.RehearsalCoach),
	}
}

func followUpTask(reg *roles.Registry, in Inputs) models.Task {
	desc := fmt.Sprintf(`Convert the meeting plan into actionable follow-ups. Produce:
1. A prioritized action item tracker with owners, due dates, and success metrics
2. A draft follow-up communication tailored to the preferred channel(s): %[1]s
3. Recommendations for logging outcomes in CRM or project tools
4. A checklist for meeting-day capture (notes, decisions, risks, commitments)
5. Guidance on leveraging any meeting recordings or transcripts post-session

Integrate the shared preparation context and emphasize how to maintain momentum immediately after the meeting concludes.`,
		orDefault(in.FollowupChans, "Not specified"))

	return models.Task{
		Label:          LabelFollowUp,
		Description:    desc,
		ExpectedOutput: "Post-meeting activation kit featuring action tracker, follow-up messaging, and enablement guidance.",
		Role:           reg.MustGet(roles.FollowUpPartner),
	}
}

// TranscriptSummaryTask builds the ancillary transcript-summarization task.
func TranscriptSummaryTask(reg *roles.Registry, in Inputs, transcript string) models.Task {
	desc := fmt.Sprintf(`You are assisting during or after a meeting with %s.
Based on the transcript below, produce:
- A concise executive summary (5-8 bullets)
- Decisions made (if any)
- Action items table: Item, Owner (if detectable), Due (suggested), Success metric
- Risks and open questions

Meeting objective: %s
Attendees: %s
Focus areas: %s

Transcript:
%s`,
		in.Company, in.Objective, in.Attendees, in.FocusAreas, transcript)

	return models.Task{
		Label:          "transcript summary",
		Description:    desc,
		ExpectedOutput: "Concise summary with decisions, action items, and risks as markdown.",
		Role:           reg.MustGet(roles.FollowUpPartner),
	}
}

// ObjectionTask builds the ancillary next-objection task for practice mode.
// practiceLog holds the formatted recent turns (bounded by the caller).
func ObjectionTask(reg *roles.Registry, in Inputs, practiceLog string) models.Task {
	desc := fmt.Sprintf(`Generate the next realistic stakeholder objection for a rehearsal.
Company: %s
Objective: %s
Attendees: %s
Focus areas: %s
Recent practice log (last 10 turns):
%s

Output 1-2 sentences with a sharp, persona-driven objection.`,
		in.Company, in.Objective, in.Attendees, in.FocusAreas, practiceLog)

	return models.Task{
		Label:          "next objection",
		Description:    desc,
		ExpectedOutput: "A concise, realistic objection in 1-2 sentences.",
		Role:           reg.MustGet(roles.RehearsalCoach),
	}
}

// ScoreResponseTask builds the ancillary response-scoring task for practice
// mode.
func ScoreResponseTask(reg *roles.Registry, in Inputs, practiceLog, response string) models.Task {
	desc := fmt.Sprintf(`Evaluate the user's response to the last objection.
Provide:
- Score (1-10) on clarity, evidence, and relevance
- 3 coaching tips to improve
- A refined sample answer (3-5 sentences)

Context: %s, objective: %s, focus areas: %s
Practice log (last 10 turns):
%s
User response:
%s`,
		in.Company, in.Objective, in.FocusAreas, practiceLog, response)

	return models.Task{
		Label:          "response score",
		Description:    desc,
		ExpectedOutput: "Markdown with a short rubric, 3 tips, and a refined sample answer.",
		Role:           reg.MustGet(roles.RehearsalCoach),
	}
}
