package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type fakeCompleter struct {
	output string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	return f.output, f.err
}

type greeting struct {
	Message string `json:"message"`
}

func (g *greeting) Validate() error {
	if g.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, true},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"fence no language", "```\n{\"a\": 1}\n```", `{"a": 1}`, true},
		{"surrounding prose", "Here is the result:\n{\"a\": 1}\nHope that helps!", `{"a": 1}`, true},
		{"nested objects", `{"a": {"b": {"c": 2}}}`, `{"a": {"b": {"c": 2}}}`, true},
		{"braces in strings", `{"a": "closing } brace"}`, `{"a": "closing } brace"}`, true},
		{"escaped quote", `{"a": "say \"hi\" {now}"}`, `{"a": "say \"hi\" {now}"}`, true},
		{"no object", "OK", "", false},
		{"unbalanced", `{"a": 1`, "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateInto(t *testing.T) {
	var g greeting
	c := &fakeCompleter{output: "```json\n{\"message\": \"hello\"}\n```"}
	if err := GenerateInto(context.Background(), c, "prompt", &g); err != nil {
		t.Fatalf("GenerateInto failed: %v", err)
	}
	if g.Message != "hello" {
		t.Errorf("message = %q, want %q", g.Message, "hello")
	}
}

func TestGenerateIntoBackendError(t *testing.T) {
	var g greeting
	c := &fakeCompleter{err: fmt.Errorf("connection refused")}
	err := GenerateInto(context.Background(), c, "prompt", &g)
	if !errors.Is(err, ErrBackend) {
		t.Errorf("err = %v, want ErrBackend", err)
	}
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("err = %v, want to match ErrGeneration", err)
	}
}

func TestGenerateIntoMalformedJSON(t *testing.T) {
	var g greeting
	c := &fakeCompleter{output: "I could not produce JSON, sorry."}
	err := GenerateInto(context.Background(), c, "prompt", &g)
	if !errors.Is(err, ErrMalformedJSON) {
		t.Errorf("err = %v, want ErrMalformedJSON", err)
	}
}

func TestGenerateIntoValidationFailure(t *testing.T) {
	var g greeting
	c := &fakeCompleter{output: `{"message": ""}`}
	err := GenerateInto(context.Background(), c, "prompt", &g)
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("err = %v, want ErrInvalidSchema", err)
	}
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("err = %v, want to match ErrGeneration", err)
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	p := BuildQuestionPrompt("task description here", "travel", "return JSON")
	for _, want := range []string{"task description here", "travel", "return JSON", "professional assistant"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
