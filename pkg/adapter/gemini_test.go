package adapter_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kiroku/pkg/adapter"
)

func setupGemini(t *testing.T) *adapter.Gemini {
	projectID := os.Getenv("TEST_GEMINI_PROJECT")
	if projectID == "" {
		t.Skip("TEST_GEMINI_PROJECT is not set")
	}

	ai, err := adapter.NewGemini(context.Background(), projectID, "us-central1")
	gt.NoError(t, err)

	return ai
}

func TestGeminiSummarize(t *testing.T) {
	ai := setupGemini(t)

	summary, err := ai.Summarize(context.Background(), "Met with the landlord about the lease renewal. Rent goes up 3% from June, parking spot included this time.")
	gt.NoError(t, err)
	gt.NotEqual(t, summary, "")

	t.Log("summary:", summary)
}

func TestGeminiGenerateTags(t *testing.T) {
	ai := setupGemini(t)

	tags, err := ai.GenerateTags(context.Background(), "Ideas for the weekend trip: hiking in the valley, checking out the farmers market.")
	gt.NoError(t, err)
	gt.A(t, tags).Longer(0)

	t.Log("tags:", tags)
}
