package summarize

import (
	"context"
	"strings"

	"meetingnotes-backend/internal/llm"
)

const (
	// chunkThreshold is the transcript length above which input is split
	// before being sent to the provider.
	chunkThreshold = 30000
	// chunkSize is the length of each transcript chunk. Must stay below
	// chunkThreshold so the consolidation input fits a single call.
	chunkSize = 25000

	// DefaultInstruction is substituted by callers when no instruction is given.
	DefaultInstruction = "Summarize this meeting transcript in a clear and organized manner."

	consolidateInstruction = "Please consolidate these summaries into one coherent summary:"
)

// Engine turns a transcript and an instruction into a single summary,
// chunking oversized transcripts and consolidating the partial summaries.
type Engine struct {
	Client llm.Client
}

// NewEngine constructs an Engine over the given generation client.
func NewEngine(client llm.Client) *Engine {
	return &Engine{Client: client}
}

// Summarize produces one summary for the transcript. Transcripts at or above
// the threshold are split into contiguous chunks, each summarized with the
// same instruction in source order, then merged by one consolidation call.
// Any provider failure aborts the whole operation; no partial result is kept.
func (e *Engine) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if len(transcript) <= chunkThreshold {
		prompt := instruction + "\n\nTranscript:\n" + transcript
		return e.Client.Generate(ctx, prompt)
	}
	return e.summarizeChunked(ctx, transcript, instruction)
}

func (e *Engine) summarizeChunked(ctx context.Context, transcript, instruction string) (string, error) {
	chunks := splitChunks(transcript, chunkSize)

	// Chunks are summarized strictly in source order, one request at a time.
	partials := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		prompt := instruction + "\n\nTranscript chunk:\n" + chunk
		partial, err := e.Client.Generate(ctx, prompt)
		if err != nil {
			return "", err
		}
		partials = append(partials, partial)
	}

	combined := strings.Join(partials, "\n\n")
	finalPrompt := consolidateInstruction + "\n\n" + combined
	return e.Client.Generate(ctx, finalPrompt)
}

// splitChunks partitions s into contiguous substrings of at most size bytes.
// The concatenation of the result is exactly s.
func splitChunks(s string, size int) []string {
	if size <= 0 {
		return []string{s}
	}
	var chunks []string
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end])
	}
	return chunks
}
