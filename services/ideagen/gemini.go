package ideagen

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
)

const promptFmt = "En tant qu'expert en enseignement du FLE, génère 3 idées d'activités créatives " +
	"pour une classe de niveau %s sur le thème \"%s\" en se concentrant sur la compétence \"%s\". " +
	"Pour chaque activité, fournis un titre, une brève description et une durée estimée en minutes. " +
	"Réponds uniquement avec le JSON."

// maxDuration bounds a suggested activity, in minutes.
const maxDuration = 240

var errEmptyResponse = errors.New("empty response")

// ideasSchema constrains the model output to a list of activities.
var ideasSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"duration":    {Type: genai.TypeNumber},
			"type":        {Type: genai.TypeString},
		},
		Required: []string{"title", "description", "duration", "type"},
	},
}

// Gemini generates activity ideas with the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ logbook.IdeaGenerator = (*Gemini)(nil)

// NewGemini returns logbook.ErrMissingAPIKey when conf has no API key.
func NewGemini(ctx context.Context, conf core.GeminiConfig) (*Gemini, error) {
	return newGemini(ctx, conf, genai.HTTPOptions{})
}

func newGemini(ctx context.Context, conf core.GeminiConfig, httpOpts genai.HTTPOptions) (*Gemini, error) {
	if core.CleanString(conf.APIKey) == "" {
		return nil, logbook.ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      conf.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOpts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating genai client")
	}
	return &Gemini{client: client, model: conf.Model, timeout: conf.Timeout}, nil
}

// Prompt is the French instruction sent to the model.
func Prompt(req logbook.IdeaRequest) string {
	return fmt.Sprintf(promptFmt, req.Level, req.Topic, req.Skill)
}

func (g *Gemini) GenerateIdeas(ctx context.Context, req logbook.IdeaRequest) ([]logbook.Idea, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ideasSchema,
	})
	if err != nil {
		return nil, errors.Wrap(err, "calling gemini")
	}
	return parseIdeas(resp.Text())
}

// rawIdea mirrors ideasSchema; the model may answer fractional durations.
type rawIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    *float64 `json:"duration"`
	Type        string   `json:"type"`
}

// parseIdeas decodes the model answer. Durations are rounded to whole minutes.
func parseIdeas(text string) ([]logbook.Idea, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyResponse
	}

	var raws []rawIdea
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		return nil, errors.Wrap(err, "decoding ideas")
	}

	ideas := make([]logbook.Idea, 0, len(raws))
	for i, raw := range raws {
		if core.CleanString(raw.Title) == "" || raw.Duration == nil {
			return nil, errors.Errorf("idea %d: missing title or duration", i)
		}
		minutes := math.Round(*raw.Duration)
		if minutes < 1 || minutes > maxDuration {
			return nil, errors.Errorf("idea %d: duration %v out of range", i, *raw.Duration)
		}
		ideas = append(ideas, logbook.Idea{
			Title:       core.CleanString(raw.Title),
			Description: core.CleanString(raw.Description),
			Duration:    int(minutes),
			Type:        core.CleanString(raw.Type),
		})
	}
	return ideas, nil
}
