package logbook

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
)

var (
	// errors
	ErrTopicRequired        = errors.New("Veuillez entrer un thème.")
	ErrMissingAPIKey        = errors.New("La clé API Gemini n'est pas configurée. Impossible de générer des idées.")
	ErrIdeaGeneration       = errors.New("Une erreur est survenue lors de la génération d'idées.")
	ErrGenerationInProgress = errors.New("une génération d'idées est déjà en cours")
)

// Skills and Levels offered by the idea generator.
var (
	Skills = []string{"Oral", "Écrit", "Grammaire", "Vocabulaire"}
	Levels = []string{"A1", "A2", "B1", "B2"}
)

const (
	DefaultSkill = "Oral"
	DefaultLevel = "A2"
)

// Idea is a generated activity suggestion; it has no id until imported.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
}

func (idea Idea) form() ActivityForm {
	return ActivityForm{
		Title:       idea.Title,
		Type:        idea.Type,
		Description: idea.Description,
		Duration:    idea.Duration,
	}
}

type IdeaRequest struct {
	Topic string `json:"topic"`
	Skill string `json:"skill" validate:"omitempty,oneof=Oral Écrit Grammaire Vocabulaire"`
	Level string `json:"level" validate:"omitempty,oneof=A1 A2 B1 B2"`
}

// Validate cleans the request and applies the default skill and level.
// A blank topic is reported as ErrTopicRequired.
func (r *IdeaRequest) Validate(validate *validator.Validate) error {
	r.Topic = core.CleanString(r.Topic)
	r.Skill = core.CleanString(r.Skill)
	r.Level = core.CleanString(r.Level)
	if r.Topic == "" {
		return ErrTopicRequired
	}
	if r.Skill == "" {
		r.Skill = DefaultSkill
	}
	if r.Level == "" {
		r.Level = DefaultLevel
	}
	return validate.Struct(r)
}

// IdeaGenerator asks a language model for activity ideas.
type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, req IdeaRequest) ([]Idea, error)
}

// IdeaBatch is the last generated suggestions. It is never persisted.
type IdeaBatch struct {
	Request    *IdeaRequest `json:"request,omitempty"`
	Ideas      []Idea       `json:"ideas"`
	Generating bool         `json:"generating"`
}

// GenerateIdeas runs one generation attempt. Prior suggestions are dropped as soon as
// the request is sent, and stay empty when it fails.
func (svc *Service) GenerateIdeas(ctx context.Context, req IdeaRequest) ([]Idea, error) {
	if err := req.Validate(svc.validate); err != nil {
		return nil, err
	}
	if svc.generator == nil {
		return nil, ErrMissingAPIKey
	}

	svc.ideasMu.Lock()
	if svc.ideas.Generating {
		svc.ideasMu.Unlock()
		return nil, ErrGenerationInProgress
	}
	svc.ideas = IdeaBatch{Request: &req, Ideas: []Idea{}, Generating: true}
	svc.ideasMu.Unlock()

	ideas, err := svc.generator.GenerateIdeas(ctx, req)

	svc.ideasMu.Lock()
	defer svc.ideasMu.Unlock()
	svc.ideas.Generating = false
	if err != nil {
		svc.logger.Error("generating ideas", errors.Wrapf(err, "topic %q", req.Topic))
		return nil, ErrIdeaGeneration
	}
	if ideas == nil {
		ideas = []Idea{}
	}
	svc.ideas.Ideas = ideas
	return append([]Idea{}, ideas...), nil
}

// Ideas returns the current suggestions.
func (svc *Service) Ideas() IdeaBatch {
	svc.ideasMu.Lock()
	defer svc.ideasMu.Unlock()
	batch := svc.ideas
	batch.Ideas = append([]Idea{}, svc.ideas.Ideas...)
	return batch
}

// ImportIdea adds the suggestion at index to the top of the activity bank.
// It is validated like a hand-made activity. The suggestion stays available,
// importing it twice creates two activities.
func (svc *Service) ImportIdea(ctx context.Context, index int) (Activity, error) {
	svc.ideasMu.Lock()
	if index < 0 || index >= len(svc.ideas.Ideas) {
		svc.ideasMu.Unlock()
		return Activity{}, errors.Wrapf(ErrNotFound, "idea %d", index)
	}
	form := svc.ideas.Ideas[index].form()
	svc.ideasMu.Unlock()

	if err := form.Validate(svc.validate); err != nil {
		return Activity{}, err
	}
	act := Activity{
		ID:          NewID(KindActivity),
		Title:       form.Title,
		Type:        form.Type,
		Description: form.Description,
		Duration:    form.Duration,
	}

	if _, err := svc.store.Update(ctx, func(d AppData) (AppData, error) {
		return PrependActivity(d, act), nil
	}); err != nil {
		return Activity{}, err
	}
	return act, nil
}
