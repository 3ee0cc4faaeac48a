package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/pkg/llmprovider"
	"meeting-task-extractor/pkg/log"
)

type mockGenerator struct {
	text  string
	err   error
	calls int
	req   *llmprovider.Request
	// block waits for ctx to be done before returning.
	block bool
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.req = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}

func newTestUseCase(gen Generator, cfg Config) extraction.UseCase {
	return New(log.NewNop(), gen, cfg)
}

var testScope = model.Scope{UserID: "u1", Timezone: "UTC"}

func TestExtract(t *testing.T) {
	tcs := map[string]struct {
		modelText   string
		want        []model.Candidate
		wantDropped int
		wantErr     error
	}{
		"john scenario": {
			modelText: `{"tasks":[{"task_description":"update the database schema","assignee":"John","due_date":"by Friday","priority":"P3"}]}`,
			want: []model.Candidate{
				{Description: "update the database schema", Assignee: "John", DueDateText: "Friday", Priority: model.PriorityP3},
			},
		},
		"n well-formed records keep order": {
			modelText: `{"tasks":[
				{"task_description":"a","assignee":"Ann","due_date":"Monday","priority":"P1"},
				{"task_description":"b","assignee":"Bob","due_date":"Tuesday","priority":"P2"},
				{"task_description":"c","assignee":"Cy","due_date":"Friday afternoon","priority":"P4"}]}`,
			want: []model.Candidate{
				{Description: "a", Assignee: "Ann", DueDateText: "Monday", Priority: model.PriorityP1},
				{Description: "b", Assignee: "Bob", DueDateText: "Tuesday", Priority: model.PriorityP2},
				{Description: "c", Assignee: "Cy", DueDateText: "Friday afternoon", Priority: model.PriorityP4},
			},
		},
		"missing priority defaults to P3": {
			modelText: `{"tasks":[{"task_description":"a","assignee":"Ann","due_date":"Monday"}]}`,
			want: []model.Candidate{
				{Description: "a", Assignee: "Ann", DueDateText: "Monday", Priority: model.PriorityP3},
			},
		},
		"null priority defaults to P3": {
			modelText: `{"tasks":[{"task_description":"a","assignee":"Ann","due_date":"","priority":null}]}`,
			want: []model.Candidate{
				{Description: "a", Assignee: "Ann", DueDateText: "", Priority: model.PriorityP3},
			},
		},
		"invalid priority is dropped not defaulted": {
			modelText: `{"tasks":[
				{"task_description":"a","assignee":"Ann","due_date":"Monday","priority":"P5"},
				{"task_description":"b","assignee":"Bob","due_date":"Monday","priority":"P2"}]}`,
			want: []model.Candidate{
				{Description: "b", Assignee: "Bob", DueDateText: "Monday", Priority: model.PriorityP2},
			},
			wantDropped: 1,
		},
		"empty or padded priority is dropped": {
			modelText: `{"tasks":[
				{"task_description":"a","assignee":"Ann","due_date":"Monday","priority":""},
				{"task_description":"b","assignee":"Bob","due_date":"Monday","priority":" P1 "},
				{"task_description":"c","assignee":"Cy","due_date":"Monday","priority":"P1"}]}`,
			want: []model.Candidate{
				{Description: "c", Assignee: "Cy", DueDateText: "Monday", Priority: model.PriorityP1},
			},
			wantDropped: 2,
		},
		"wrong types and missing fields are dropped": {
			modelText: `{"tasks":[
				{"task_description":42,"assignee":"Ann","due_date":"Monday"},
				{"task_description":"no assignee","due_date":"Monday"},
				{"task_description":"no due","assignee":"Ann"},
				{"task_description":"   ","assignee":"Ann","due_date":"Monday"},
				{"task_description":"numeric priority","assignee":"Ann","due_date":"Monday","priority":1},
				"not an object",
				{"task_description":"ok","assignee":"","due_date":"before noon"}]}`,
			want: []model.Candidate{
				{Description: "ok", Assignee: "", DueDateText: "noon", Priority: model.PriorityP3},
			},
			wantDropped: 6,
		},
		"code fenced output": {
			modelText: "```json\n{\"tasks\":[{\"task_description\":\"a\",\"assignee\":\"Ann\",\"due_date\":\"until June 3\"}]}\n```",
			want: []model.Candidate{
				{Description: "a", Assignee: "Ann", DueDateText: "June 3", Priority: model.PriorityP3},
			},
		},
		"missing tasks key is empty": {
			modelText: `{"items":[]}`,
			want:      []model.Candidate{},
			wantErr:   extraction.ErrNoTasksFound,
		},
		"all records invalid": {
			modelText:   `{"tasks":[{"task_description":"a","assignee":"Ann","due_date":"x","priority":"urgent"}]}`,
			want:        []model.Candidate{},
			wantDropped: 1,
			wantErr:     extraction.ErrNoTasksFound,
		},
		"non json output fails": {
			modelText: `Sorry, I cannot help with that.`,
			wantErr:   extraction.ErrExtractionFailed,
		},
		"top level array fails": {
			modelText: `[{"task_description":"a","assignee":"Ann","due_date":"x"}]`,
			wantErr:   extraction.ErrExtractionFailed,
		},
		"tasks not an array fails": {
			modelText: `{"tasks":"none"}`,
			wantErr:   extraction.ErrExtractionFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			gen := &mockGenerator{text: tc.modelText}
			uc := newTestUseCase(gen, Config{})

			out, err := uc.Extract(context.Background(), testScope, extraction.ExtractInput{Transcript: "meeting notes"})

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want == nil {
				return
			}

			if out.Count != len(tc.want) || len(out.Candidates) != len(tc.want) {
				t.Fatalf("expected %d candidates, got count=%d len=%d", len(tc.want), out.Count, len(out.Candidates))
			}
			for i := range tc.want {
				if out.Candidates[i] != tc.want[i] {
					t.Errorf("candidate %d: expected %+v, got %+v", i, tc.want[i], out.Candidates[i])
				}
			}
			if out.Dropped != tc.wantDropped {
				t.Errorf("expected %d dropped, got %d", tc.wantDropped, out.Dropped)
			}
		})
	}
}

func TestExtract_InputErrors(t *testing.T) {
	tcs := map[string]struct {
		transcript string
		cfg        Config
		wantErr    error
	}{
		"empty":           {transcript: "", wantErr: extraction.ErrEmptyTranscript},
		"whitespace only": {transcript: " \n\t ", wantErr: extraction.ErrEmptyTranscript},
		"too long":        {transcript: "0123456789x", cfg: Config{MaxTranscriptChars: 10}, wantErr: extraction.ErrTranscriptTooLong},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			gen := &mockGenerator{text: `{"tasks":[]}`}
			uc := newTestUseCase(gen, tc.cfg)

			_, err := uc.Extract(context.Background(), testScope, extraction.ExtractInput{Transcript: tc.transcript})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if gen.calls != 0 {
				t.Errorf("expected no model call, got %d", gen.calls)
			}
		})
	}
}

func TestExtract_ModelFailureIsOpaque(t *testing.T) {
	gen := &mockGenerator{err: errors.New("401 invalid api key sk-123")}
	uc := newTestUseCase(gen, Config{})

	_, err := uc.Extract(context.Background(), testScope, extraction.ExtractInput{Transcript: "notes"})
	if !errors.Is(err, extraction.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", gen.calls)
	}
}

func TestExtract_Timeout(t *testing.T) {
	gen := &mockGenerator{block: true}
	uc := newTestUseCase(gen, Config{Timeout: 20 * time.Millisecond})

	_, err := uc.Extract(context.Background(), testScope, extraction.ExtractInput{Transcript: "notes"})
	if !errors.Is(err, extraction.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed on timeout, got %v", err)
	}
}

func TestExtract_RequestShape(t *testing.T) {
	gen := &mockGenerator{text: `{"tasks":[]}`}
	uc := newTestUseCase(gen, Config{Temperature: 0.1})

	_, _ = uc.Extract(context.Background(), testScope, extraction.ExtractInput{Transcript: "  John will update the schema by Friday.  "})

	if gen.req == nil {
		t.Fatal("expected a model request")
	}
	if !gen.req.JSONMode {
		t.Error("expected JSON mode")
	}
	if gen.req.SystemInstruction != systemInstruction {
		t.Error("expected the fixed system instruction")
	}
	if len(gen.req.Messages) != 1 || gen.req.Messages[0].Role != llmprovider.RoleUser ||
		gen.req.Messages[0].Content != "John will update the schema by Friday." {
		t.Errorf("unexpected messages %+v", gen.req.Messages)
	}
}

func TestStripLeadingPreposition(t *testing.T) {
	tcs := map[string]string{
		"by Friday afternoon": "Friday afternoon",
		"Before noon":         "noon",
		"until June 3":        "June 3",
		"Friday":              "Friday",
		"bypass day":          "bypass day",
		"  by  tomorrow ":     "tomorrow",
		"":                    "",
	}
	for in, want := range tcs {
		if got := stripLeadingPreposition(in); got != want {
			t.Errorf("stripLeadingPreposition(%q) = %q, want %q", in, got, want)
		}
	}
}
