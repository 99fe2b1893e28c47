package adapter

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// Gemini implements AI on the Gemini API via Vertex AI.
type Gemini struct {
	client *genai.Client
	model  string
}

type GeminiOption func(*Gemini)

func WithGenerativeModel(model string) GeminiOption {
	return func(g *Gemini) {
		g.model = model
	}
}

func NewGemini(ctx context.Context, projectID, location string, opts ...GeminiOption) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	g := &Gemini{
		client: client,
		model:  "gemini-2.5-flash",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *Gemini) generate(ctx context.Context, parts ...*genai.Part) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: parts,
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content")
	}

	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", goerr.New("empty response from model")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (g *Gemini) Summarize(ctx context.Context, content string) (string, error) {
	return g.generate(ctx, &genai.Part{
		Text: "Summarize the following note in one or two sentences. Reply with the summary only.\n\n" + content,
	})
}

func (g *Gemini) GenerateTags(ctx context.Context, content string) ([]string, error) {
	text, err := g.generate(ctx, &genai.Part{
		Text: "Suggest up to 3 short tags for the following note. Reply with the tags only, comma separated.\n\n" + content,
	})
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, tag := range strings.Split(text, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (g *Gemini) SuggestTopics(ctx context.Context, content string) (string, error) {
	return g.generate(ctx, &genai.Part{
		Text: "Suggest a few related topics worth exploring for the following note, as a short bullet list.\n\n" + content,
	})
}

func (g *Gemini) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", goerr.New("audio data is empty")
	}

	return g.generate(ctx,
		&genai.Part{Text: "Transcribe this recording. Reply with the transcript only."},
		&genai.Part{
			InlineData: &genai.Blob{
				MIMEType: "audio/wav",
				Data:     audio,
			},
		},
	)
}
