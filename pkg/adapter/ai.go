package adapter

import "context"

// AI is the enrichment boundary: derived text from note content or audio.
// Callers are expected to treat failures as "no enrichment" and proceed.
type AI interface {
	// Summarize produces a short summary of the content
	Summarize(ctx context.Context, content string) (string, error)
	// GenerateTags produces tags for the content
	GenerateTags(ctx context.Context, content string) ([]string, error)
	// SuggestTopics produces related topic suggestions for the content
	SuggestTopics(ctx context.Context, content string) (string, error)
	// Transcribe converts recorded audio into text
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
