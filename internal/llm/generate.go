package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrGeneration is the umbrella error for the whole generation pipeline; the
// more specific sentinels below wrap it so callers can match either level.
var (
	ErrGeneration    = errors.New("question generation failed")
	ErrBackend       = fmt.Errorf("%w: backend request failed", ErrGeneration)
	ErrMalformedJSON = fmt.Errorf("%w: malformed model output", ErrGeneration)
	ErrInvalidSchema = fmt.Errorf("%w: output failed validation", ErrGeneration)
)

// Validator is implemented by the typed schemas the model output is decoded
// into.
type Validator interface {
	Validate() error
}

// GenerateInto runs one completion and decodes the model output into dst.
// No retries; a model that cannot produce conforming JSON surfaces as an
// error the caller maps to a 502 or a fallback.
func GenerateInto(ctx context.Context, c Completer, prompt string, dst Validator) error {
	raw, err := c.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrGeneration) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}

	payload, ok := ExtractJSON(raw)
	if !ok {
		return fmt.Errorf("%w: no JSON object in output", ErrMalformedJSON)
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}

// ExtractJSON pulls the first JSON object out of raw model output. Models
// routinely wrap the payload in ```json fences or surround it with prose, so
// this scans for the first balanced top-level object, skipping braces inside
// string literals.
func ExtractJSON(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if fenced, ok := stripFence(s); ok {
		s = fenced
	}

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func stripFence(s string) (string, bool) {
	if !strings.HasPrefix(s, "```") {
		return "", false
	}
	rest := strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}
