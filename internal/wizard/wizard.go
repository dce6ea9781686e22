// Package wizard implements the conversational flow that collects
// ebook metadata step by step. The flow is an explicit state machine:
// each session holds a current Step, and every answer advances it
// through one transition. Free-text answers are run through the
// extract package, so the user always reviews derived values (topic,
// audience, chapter list) before the final document is assembled.
package wizard

import (
	"time"

	"github.com/productforge/forge/internal/product"
	"github.com/productforge/forge/internal/types"
)

// Step identifies a stage of the wizard flow.
type Step string

const (
	StepTopic    Step = "topic"
	StepAudience Step = "audience"
	StepTitle    Step = "title"
	StepAuthor   Step = "author"
	StepChapters Step = "chapters"
	StepDesign   Step = "design"
	StepBranding Step = "branding"
	StepReview   Step = "review"
	StepDone     Step = "done"
)

// next maps each step to its successor. The flow is linear.
var next = map[Step]Step{
	StepTopic:    StepAudience,
	StepAudience: StepTitle,
	StepTitle:    StepAuthor,
	StepAuthor:   StepChapters,
	StepChapters: StepDesign,
	StepDesign:   StepBranding,
	StepBranding: StepReview,
	StepReview:   StepDone,
}

// prompts are the scripted questions shown for each step.
var prompts = map[Step]string{
	StepTopic:    "What do you do? Tell me about your expertise in a sentence or two.",
	StepAudience: "Who is this book for? Describe your ideal reader.",
	StepTitle:    "Pick a title by number, or type your own.",
	StepAuthor:   "What name should go on the cover?",
	StepChapters: "Paste your raw content or outline and I'll split it into chapters.",
	StepDesign:   "Choose a design preset.",
	StepBranding: "Any link you want on the closing page? Paste a URL or say skip.",
	StepReview:   "Everything look good? Say yes to assemble your book.",
	StepDone:     "Your book is ready to generate.",
}

// Prompt returns the scripted question for a step.
func Prompt(step Step) string { return prompts[step] }

// Session is the in-progress ebook document plus the wizard's position
// in the flow. Sessions are owned by a Manager and mutated only while
// the manager's lock is held.
type Session struct {
	ID        string          `json:"id"`
	Step      Step            `json:"step"`
	Topic     string          `json:"topic,omitempty"`
	Audience  string          `json:"audience,omitempty"`
	Titles    []string        `json:"titles,omitempty"`
	Title     string          `json:"title,omitempty"`
	Author    string          `json:"author,omitempty"`
	Chapters  []types.Chapter `json:"chapters,omitempty"`
	PresetID  string          `json:"preset_id,omitempty"`
	LogoPath  string          `json:"logo_path,omitempty"`
	SiteURL   string          `json:"site_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	design product.DesignSystem
}

// Input is one user answer. Text carries the free-form reply; Chapters
// carries a user-edited chapter list for the chapters step, which takes
// precedence over segmenting Text; LogoPath attaches an uploaded logo
// during the branding step.
type Input struct {
	Text     string          `json:"text"`
	Chapters []types.Chapter `json:"chapters,omitempty"`
	LogoPath string          `json:"logo_path,omitempty"`
}

// Reply describes the state after an answer was applied: the step the
// wizard is now on, its prompt, and any values the answer derived.
type Reply struct {
	Step     Step            `json:"step"`
	Prompt   string          `json:"prompt"`
	Topic    string          `json:"topic,omitempty"`
	Audience string          `json:"audience,omitempty"`
	Titles   []string        `json:"titles,omitempty"`
	Chapters []types.Chapter `json:"chapters,omitempty"`
	Done     bool            `json:"done"`
	Config   *product.Config `json:"config,omitempty"`
}
