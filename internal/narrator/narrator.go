// Package narrator asks Gemini to write an epilogue for a finished game
// from its result and journal.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
)

//go:embed prompts/epilogue.txt
var epiloguePrompt string

var epilogueTmpl = template.Must(template.New("epilogue").Parse(epiloguePrompt))

// Model is the Gemini model used for the epilogue.
const Model = "gemini-2.5-flash"

// journalEntries is how much of the journal goes into the prompt.
const journalEntries = 40

// ErrNoContent is returned when Gemini answers without any text.
var ErrNoContent = errors.New("no content returned from Gemini")

type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(Model)
	return &Narrator{
		client: client,
		model:  model,
	}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// Epilogue writes the closing story for a finished game.
func (n *Narrator) Epilogue(ctx context.Context, s engine.Summary) (string, error) {
	journal := models.Journal{Entries: s.Journal}
	prompt, err := buildPrompt(s.Result, journal.Tail(journalEntries))
	if err != nil {
		return "", err
	}
	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func buildPrompt(r engine.Result, entries []models.JournalEntry) (string, error) {
	data := struct {
		engine.Result
		Year    int
		Entries []models.JournalEntry
	}{
		Result:  r,
		Year:    engine.StartYear,
		Entries: entries,
	}
	if data.Leader == "" {
		data.Leader = "an unnamed traveler"
	}
	if data.Profession == "" {
		data.Profession = "settler"
	}

	var buf bytes.Buffer
	if err := epilogueTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoContent
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			return "", fmt.Errorf("unexpected response part %T from Gemini", part)
		}
		b.WriteString(string(text))
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrNoContent
	}
	return out, nil
}
