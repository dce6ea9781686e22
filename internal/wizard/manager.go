package wizard

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/productforge/forge/internal/extract"
	"github.com/productforge/forge/internal/product"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// ErrEmptyAnswer is returned when a step receives no usable input.
// The session stays on the same step so the caller can re-prompt.
var ErrEmptyAnswer = errors.New("answer cannot be empty")

// ErrUnknownPreset is returned when the design step names a preset the
// store does not have.
var ErrUnknownPreset = errors.New("unknown preset")

// ErrFinished is returned when answering a session that already completed.
var ErrFinished = errors.New("session already finished")

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 2 * time.Hour

// PresetResolver resolves a preset ID to its design system. Implemented
// by the presets store; an interface here keeps the wizard free of a
// presets dependency.
type PresetResolver interface {
	Resolve(id string) (product.DesignSystem, bool)
}

// Manager owns all live wizard sessions. All access goes through the
// manager's lock; the extraction calls inside are pure functions, so
// the lock is held only for cheap string work.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	presets  PresetResolver
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewManager creates a session manager. A nil resolver disables the
// design step's preset lookup (any preset ID is then rejected).
func NewManager(presets PresetResolver, ttl time.Duration, logger *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		presets:  presets,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Start creates a new session positioned at the first step.
func (m *Manager) Start() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	now := m.now()
	s := &Session{
		ID:        uuid.New().String(),
		Step:      StepTopic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	m.logger.Info("wizard session started", "session", s.ID)

	snapshot := *s
	return &snapshot
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.liveLocked(id)
	if err != nil {
		return nil, err
	}
	snapshot := *s
	return &snapshot, nil
}

// Answer applies one user answer to a session and advances the state
// machine. Validation failures leave the session on its current step.
func (m *Manager) Answer(id string, in Input) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.liveLocked(id)
	if err != nil {
		return nil, err
	}
	if s.Step == StepDone {
		return nil, ErrFinished
	}

	if err := m.applyLocked(s, in); err != nil {
		return nil, err
	}

	s.Step = next[s.Step]
	s.UpdatedAt = m.now()

	reply := &Reply{
		Step:   s.Step,
		Prompt: Prompt(s.Step),
	}
	switch s.Step {
	case StepAudience:
		reply.Topic = s.Topic
	case StepTitle:
		reply.Audience = s.Audience
		reply.Titles = s.Titles
	case StepDesign:
		reply.Chapters = s.Chapters
	case StepDone:
		reply.Done = true
		reply.Config = s.buildConfig()
		m.logger.Info("wizard session finished",
			"session", s.ID, "title", s.Title, "chapters", len(s.Chapters))
	}
	return reply, nil
}

// applyLocked runs the transition handler for the session's current step.
func (m *Manager) applyLocked(s *Session, in Input) error {
	text := strings.TrimSpace(in.Text)

	switch s.Step {
	case StepTopic:
		if text == "" {
			return ErrEmptyAnswer
		}
		s.Topic = extract.NormalizeTopic(text)

	case StepAudience:
		if text == "" {
			return ErrEmptyAnswer
		}
		s.Audience = extract.NormalizeAudience(text)
		s.Titles = extract.GenerateTitles(s.Topic, s.Audience)

	case StepTitle:
		if text == "" {
			return ErrEmptyAnswer
		}
		// A bare number picks a suggested title; anything else is custom.
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(s.Titles) {
			s.Title = s.Titles[n-1]
		} else {
			s.Title = text
		}

	case StepAuthor:
		if text == "" {
			return ErrEmptyAnswer
		}
		s.Author = text

	case StepChapters:
		if len(in.Chapters) > 0 {
			s.Chapters = in.Chapters
			break
		}
		if text == "" {
			return ErrEmptyAnswer
		}
		s.Chapters = extract.Segment(in.Text)

	case StepDesign:
		if text == "" {
			return ErrEmptyAnswer
		}
		if m.presets == nil {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, text)
		}
		design, ok := m.presets.Resolve(text)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, text)
		}
		s.PresetID = text
		s.design = design

	case StepBranding:
		if in.LogoPath != "" {
			s.LogoPath = in.LogoPath
		}
		if text != "" && !strings.EqualFold(text, "skip") {
			s.SiteURL = text
		}

	case StepReview:
		// Any answer confirms; the review step exists so the caller can
		// show the assembled session before generating.
	}
	return nil
}

// liveLocked fetches a session, expiring it if it has been idle too long.
func (m *Manager) liveLocked(id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		m.logger.Info("wizard session expired", "session", id)
		return nil, ErrNotFound
	}
	return s, nil
}

// pruneLocked drops all expired sessions.
func (m *Manager) pruneLocked() {
	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
