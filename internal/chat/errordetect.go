package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhngdev/lingopad/internal/llm"
)

const errorDetectTemplate = `You are an English teaching assistant. Analyze the following English-Vietnamese mixed sentence and provide corrections:

{input_sentence}

Respond with a JSON object of this exact shape:
{
  "corrected_sentence": "<fully corrected English sentence>",
  "errors": [
    {
      "error_segment": "<the part of the sentence containing the error>",
      "suggestion": "<correction suggestion>",
      "error_type": "Grammar" | "Vocabulary" | "Spelling" | "Word Choice" | "Sentence Structure"
    }
  ],
  "vocabulary": [
    {"original": "<original Vietnamese word/phrase>", "suggestion": "<English translation>"}
  ]
}

If the sentence has no errors, respond with exactly "OK".
Otherwise, provide the analysis in the specified JSON format.`

type ErrorItem struct {
	ErrorSegment string `json:"error_segment"`
	Suggestion   string `json:"suggestion"`
	ErrorType    string `json:"error_type"`
}

type VocabPair struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// Analysis is the outcome of checking one learner sentence. Clean means the
// model found nothing to correct; it is a normal result, not an error.
type Analysis struct {
	Clean      bool        `json:"clean"`
	Corrected  string      `json:"corrected_sentence,omitempty"`
	Errors     []ErrorItem `json:"errors,omitempty"`
	Vocabulary []VocabPair `json:"vocabulary,omitempty"`
}

// ErrorDetector checks learner sentences for grammar and vocabulary problems.
type ErrorDetector struct {
	completer llm.Completer
}

func NewErrorDetector(completer llm.Completer) *ErrorDetector {
	return &ErrorDetector{completer: completer}
}

// Analyze runs one sentence through the checker. A bare "OK" completion means
// the sentence is clean.
func (d *ErrorDetector) Analyze(ctx context.Context, sentence string) (*Analysis, error) {
	prompt := strings.Replace(errorDetectTemplate, "{input_sentence}", sentence, 1)

	raw, err := d.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyze sentence: %w", err)
	}

	if isOK(raw) {
		return &Analysis{Clean: true}, nil
	}

	payload, ok := llm.ExtractJSON(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in analysis output", llm.ErrMalformedJSON)
	}
	var a Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrMalformedJSON, err)
	}
	if a.Corrected == "" {
		return nil, fmt.Errorf("%w: analysis missing corrected sentence", llm.ErrInvalidSchema)
	}
	return &a, nil
}

func isOK(raw string) bool {
	s := strings.Trim(strings.TrimSpace(raw), "\"'`")
	return strings.EqualFold(s, "OK")
}
