package adapter

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Latencies of the simulated backend, matching the behavior of a real
// provider closely enough for manual testing.
const (
	simSummarizeDelay  = 500 * time.Millisecond
	simTagsDelay       = 300 * time.Millisecond
	simTopicsDelay     = 400 * time.Millisecond
	simTranscribeDelay = 1000 * time.Millisecond
)

var wordSplitter = regexp.MustCompile(`\W+`)

// Simulated is a deterministic AI backend. It needs no credentials and is the
// default enrichment provider.
type Simulated struct {
	delayScale float64
}

type SimulatedOption func(*Simulated)

// WithDelayScale scales the simulated latencies. 0 disables them, which tests
// rely on.
func WithDelayScale(scale float64) SimulatedOption {
	return func(s *Simulated) {
		s.delayScale = scale
	}
}

func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		delayScale: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulated) sleep(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * s.delayScale)
	if d <= 0 {
		return nil
	}

	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "enrichment canceled")
	}
}

func (s *Simulated) Summarize(ctx context.Context, content string) (string, error) {
	if err := s.sleep(ctx, simSummarizeDelay); err != nil {
		return "", err
	}

	head := []rune(content)
	if len(head) > 50 {
		head = head[:50]
	}
	return `This is a simulated AI summary of your note: "` + string(head) + `..."`, nil
}

// GenerateTags lowercases the content, splits on non-word boundaries, keeps
// words longer than 4 characters, de-duplicates preserving first occurrence,
// takes the first 3 and capitalizes each.
func (s *Simulated) GenerateTags(ctx context.Context, content string) ([]string, error) {
	if err := s.sleep(ctx, simTagsDelay); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var tags []string
	for _, word := range wordSplitter.Split(strings.ToLower(content), -1) {
		if len(word) <= 4 || seen[word] {
			continue
		}
		seen[word] = true
		tags = append(tags, strings.ToUpper(word[:1])+word[1:])
		if len(tags) == 3 {
			break
		}
	}

	return tags, nil
}

func (s *Simulated) SuggestTopics(ctx context.Context, content string) (string, error) {
	if err := s.sleep(ctx, simTopicsDelay); err != nil {
		return "", err
	}

	return "Related topics might include:\n- Topic 1\n- Topic 2\n- Topic 3", nil
}

func (s *Simulated) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if err := s.sleep(ctx, simTranscribeDelay); err != nil {
		return "", err
	}
	if len(audio) == 0 {
		return "", goerr.New("audio data is empty")
	}

	return "This is a simulated transcription of your voice note.", nil
}
