package narrator

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
)

func TestBuildPromptWin(t *testing.T) {
	r := engine.Result{
		Win:        true,
		Points:     1172,
		Location:   "Willamette Valley",
		Date:       "September 30, 1848",
		Days:       183,
		Leader:     "Ann",
		Profession: models.Farmer,
		Survivors:  2,
	}
	entries := []models.JournalEntry{
		{Date: "April 1, 1848", Text: "The party leaves Independence."},
		{Date: "May 9, 1848", Text: "Ben has broken an arm."},
	}

	prompt, err := buildPrompt(r, entries)
	require.NoError(t, err)
	assert.Contains(t, prompt, "in 1848")
	assert.Contains(t, prompt, "led by Ann, a farmer")
	assert.Contains(t, prompt, "They reached Willamette Valley on September 30, 1848 after 183 days")
	assert.Contains(t, prompt, "earning 1172 points")
	assert.Contains(t, prompt, "- May 9, 1848: Ben has broken an arm.\n")
	assert.NotContains(t, prompt, "journey ended")
}

func TestBuildPromptLoss(t *testing.T) {
	r := engine.Result{
		Reason:   "the party leader has died",
		Location: "Fort Kearney",
		Date:     "May 2, 1848",
		Days:     31,
	}

	prompt, err := buildPrompt(r, nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "led by an unnamed traveler, a settler")
	assert.Contains(t, prompt, "ended at Fort Kearney on May 2, 1848 after 31 days: the party leader has died.")
	assert.NotContains(t, prompt, "points")
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text("  They went west. "),
				genai.Text("Most of them arrived.\n"),
			}},
		}},
	}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "They went west. Most of them arrived.", text)
}

func TestResponseTextEmpty(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}}},
	})
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestResponseTextUnexpectedPart(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
		}},
	}
	_, err := responseText(resp)
	assert.Error(t, err)
}
