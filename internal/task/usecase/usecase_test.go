package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
	repo "meeting-task-extractor/internal/task/repository"
	"meeting-task-extractor/pkg/datemath"
	"meeting-task-extractor/pkg/gcalendar"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/mq"
)

var fixedNow = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC) // a Wednesday

type fakeRepo struct {
	tasks     map[string]model.Task
	order     map[string]int
	seq       int
	getCalls  int
	createErr map[string]error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[string]model.Task{}, order: map[string]int{}, createErr: map[string]error{}}
}

func (r *fakeRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	if err := r.createErr[opt.Description]; err != nil {
		return model.Task{}, err
	}
	r.seq++
	t := model.Task{
		ID:                  uuid.NewString(),
		OwnerID:             opt.OwnerID,
		Description:         opt.Description,
		Assignee:            opt.Assignee,
		DueDateAbsolute:     opt.DueDateAbsolute,
		DueDateOriginalText: opt.DueDateOriginalText,
		Priority:            opt.Priority,
		CreatedAt:           fixedNow,
		UpdatedAt:           fixedNow,
	}
	r.tasks[t.ID] = t
	r.order[t.ID] = r.seq
	return t, nil
}

func (r *fakeRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	r.getCalls++
	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *fakeRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if t.OwnerID != opt.OwnerID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	t.Description = opt.Description
	t.Assignee = opt.Assignee
	t.DueDateAbsolute = opt.DueDateAbsolute
	t.DueDateOriginalText = opt.DueDateOriginalText
	t.Priority = opt.Priority
	t.Completed = opt.Completed
	r.tasks[t.ID] = t
	return t, nil
}

func (r *fakeRepo) Delete(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return false, nil
	}
	delete(r.tasks, opt.ID)
	return true, nil
}

type mockCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "ev1", HtmlLink: "https://calendar.example/ev1"}, nil
}

type mockPublisher struct {
	keys     []string
	payloads []any
	err      error
}

func (m *mockPublisher) Publish(ctx context.Context, key string, payload any) error {
	m.keys = append(m.keys, key)
	m.payloads = append(m.payloads, payload)
	return m.err
}

func (m *mockPublisher) Close() {}

func newTestUseCase(t *testing.T, r *fakeRepo, cal gcalendar.Calendar, pub mq.Publisher) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(log.NewNop(), r, fixedParser{parser}, cal, pub, Config{}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// fixedParser pins the reference instant so relative phrases are deterministic.
type fixedParser struct {
	p *datemath.Parser
}

func (f fixedParser) Parse(text, timezone string) (time.Time, error) {
	return f.p.ParseAt(text, timezone, fixedNow)
}

func strPtr(s string) *string { return &s }

func TestCreateBulk(t *testing.T) {
	alice := model.Scope{UserID: "alice", Timezone: "UTC"}

	tcs := map[string]struct {
		items       []task.BulkItem
		createErr   map[string]error
		wantCreated []string
		wantSkipped int
		wantErr     error
	}{
		"malformed item skipped, well-formed item created": {
			items: []task.BulkItem{
				{Description: strPtr("write the report"), DueDateText: strPtr("tomorrow"), Priority: strPtr("P2")},
				{Description: strPtr("update the schema"), Assignee: strPtr("John"), DueDateText: strPtr("Friday")},
			},
			wantCreated: []string{"update the schema"},
			wantSkipped: 1,
		},
		"blank description skipped": {
			items: []task.BulkItem{
				{Description: strPtr("   "), Assignee: strPtr("Sam")},
				{Description: strPtr("ship it"), Assignee: strPtr("")},
			},
			wantCreated: []string{"ship it"},
			wantSkipped: 1,
		},
		"invalid priority skipped": {
			items: []task.BulkItem{
				{Description: strPtr("a"), Assignee: strPtr("x"), Priority: strPtr("urgent")},
				{Description: strPtr("b"), Assignee: strPtr("y"), Priority: strPtr("P1")},
			},
			wantCreated: []string{"b"},
			wantSkipped: 1,
		},
		"empty or padded priority skipped": {
			items: []task.BulkItem{
				{Description: strPtr("a"), Assignee: strPtr("x"), Priority: strPtr("")},
				{Description: strPtr("b"), Assignee: strPtr("y"), Priority: strPtr(" P1 ")},
				{Description: strPtr("c"), Assignee: strPtr("z")},
			},
			wantCreated: []string{"c"},
			wantSkipped: 2,
		},
		"repository failure omits only that item": {
			items: []task.BulkItem{
				{Description: strPtr("first"), Assignee: strPtr("x")},
				{Description: strPtr("second"), Assignee: strPtr("y")},
				{Description: strPtr("third"), Assignee: strPtr("z")},
			},
			createErr:   map[string]error{"second": repo.ErrFailedToInsert},
			wantCreated: []string{"first", "third"},
			wantSkipped: 1,
		},
		"all items malformed": {
			items: []task.BulkItem{
				{Assignee: strPtr("x")},
			},
			wantCreated: []string{},
			wantSkipped: 1,
		},
		"no items": {
			wantErr: task.ErrNoItems,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newFakeRepo()
			if tc.createErr != nil {
				r.createErr = tc.createErr
			}
			uc := newTestUseCase(t, r, nil, nil)

			out, err := uc.CreateBulk(context.Background(), alice, task.CreateBulkInput{Items: tc.items})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}

			if len(out.Tasks) != len(tc.wantCreated) {
				t.Fatalf("expected %d created, got %d: %+v", len(tc.wantCreated), len(out.Tasks), out.Tasks)
			}
			for i, want := range tc.wantCreated {
				if out.Tasks[i].Description != want {
					t.Errorf("task %d: expected %q, got %q", i, want, out.Tasks[i].Description)
				}
				if out.Tasks[i].OwnerID != "alice" {
					t.Errorf("task %d: expected owner alice, got %q", i, out.Tasks[i].OwnerID)
				}
			}
			if out.Skipped != tc.wantSkipped {
				t.Errorf("expected %d skipped, got %d", tc.wantSkipped, out.Skipped)
			}
		})
	}
}

func TestCreateBulk_DueDates(t *testing.T) {
	tcs := map[string]struct {
		text    string
		tz      string
		wantAbs time.Time
	}{
		"unparseable phrase falls back to now plus one day": {
			text:    "next Friday at noon",
			wantAbs: fixedNow.Add(24 * time.Hour),
		},
		"empty phrase falls back": {
			text:    "",
			wantAbs: fixedNow.Add(24 * time.Hour),
		},
		"relative phrase resolved": {
			text:    "tomorrow",
			wantAbs: time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC),
		},
		"resolved in caller timezone and stored as UTC": {
			text:    "2024-03-20 09:00",
			tz:      "Europe/Berlin",
			wantAbs: time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newTestUseCase(t, newFakeRepo(), nil, nil)
			sc := model.Scope{UserID: "alice", Timezone: tc.tz}

			out, err := uc.CreateBulk(context.Background(), sc, task.CreateBulkInput{Items: []task.BulkItem{
				{Description: strPtr("review the proposal"), Assignee: strPtr("Ana"), DueDateText: strPtr(tc.text)},
			}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Tasks) != 1 {
				t.Fatalf("expected 1 task, got %d", len(out.Tasks))
			}

			got := out.Tasks[0]
			if got.DueDateOriginalText != tc.text {
				t.Errorf("original text: expected %q, got %q", tc.text, got.DueDateOriginalText)
			}
			if !got.DueDateAbsolute.Equal(tc.wantAbs) {
				t.Errorf("absolute: expected %v, got %v", tc.wantAbs, got.DueDateAbsolute)
			}
			if got.DueDateAbsolute.Location() != time.UTC {
				t.Errorf("expected UTC, got %v", got.DueDateAbsolute.Location())
			}
			if got.Priority != model.PriorityP3 {
				t.Errorf("expected default priority P3, got %s", got.Priority)
			}
		})
	}
}

func TestCreateBulk_SideEffects(t *testing.T) {
	cal := &mockCalendar{err: errors.New("calendar quota exceeded")}
	pub := &mockPublisher{err: errors.New("broker down")}
	uc := newTestUseCase(t, newFakeRepo(), cal, pub)

	out, err := uc.CreateBulk(context.Background(), model.Scope{UserID: "alice"}, task.CreateBulkInput{
		Source: task.SourceDraft,
		Items: []task.BulkItem{
			{Description: strPtr("send notes"), Assignee: strPtr("Lee"), DueDateText: strPtr("tomorrow")},
		},
	})
	if err != nil {
		t.Fatalf("side effect failures must not fail the create: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(out.Tasks))
	}

	if len(cal.reqs) != 1 {
		t.Fatalf("expected 1 calendar request, got %d", len(cal.reqs))
	}
	req := cal.reqs[0]
	if req.TaskID != out.Tasks[0].ID || !req.EndTime.Equal(out.Tasks[0].DueDateAbsolute) {
		t.Errorf("unexpected calendar request %+v", req)
	}
	if got := req.EndTime.Sub(req.StartTime); got != 30*time.Minute {
		t.Errorf("expected 30m event, got %v", got)
	}
	if req.CalendarID != "primary" {
		t.Errorf("expected primary calendar, got %q", req.CalendarID)
	}

	if len(pub.keys) != 1 || pub.keys[0] != "task.created" {
		t.Fatalf("expected one task.created event, got %v", pub.keys)
	}
	ev, ok := pub.payloads[0].(task.CreatedEvent)
	if !ok || ev.TaskID != out.Tasks[0].ID || ev.Source != task.SourceDraft {
		t.Errorf("unexpected event payload %+v", pub.payloads[0])
	}
}

func TestOwnershipIsolation(t *testing.T) {
	r := newFakeRepo()
	uc := newTestUseCase(t, r, nil, nil)
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}
	bob := model.Scope{UserID: "bob"}

	out, err := uc.CreateBulk(ctx, alice, task.CreateBulkInput{Items: []task.BulkItem{
		{Description: strPtr("alice's task"), Assignee: strPtr("Alice")},
	}})
	if err != nil || len(out.Tasks) != 1 {
		t.Fatalf("setup: %v %+v", err, out)
	}
	id := out.Tasks[0].ID

	if _, err := uc.Detail(ctx, bob, id); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := uc.Update(ctx, bob, task.UpdateInput{ID: id, Description: strPtr("hijacked")}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update: expected ErrTaskNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, bob, id); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete: expected ErrTaskNotFound, got %v", err)
	}
	list, err := uc.List(ctx, bob, task.ListInput{})
	if err != nil || len(list.Tasks) != 0 {
		t.Errorf("List: expected no tasks for bob, got %+v (err %v)", list.Tasks, err)
	}

	got, err := uc.Detail(ctx, alice, id)
	if err != nil {
		t.Fatalf("Detail for owner: %v", err)
	}
	if got.Description != "alice's task" {
		t.Errorf("task was modified by another user: %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	alice := model.Scope{UserID: "alice"}

	tcs := map[string]struct {
		input   task.UpdateInput
		wantErr error
		check   func(t *testing.T, before, after model.Task)
	}{
		"partial update keeps other fields": {
			input: task.UpdateInput{Assignee: strPtr("Maria")},
			check: func(t *testing.T, before, after model.Task) {
				if after.Assignee != "Maria" || after.Description != before.Description || after.Priority != before.Priority {
					t.Errorf("unexpected task %+v", after)
				}
				if !after.DueDateAbsolute.Equal(before.DueDateAbsolute) {
					t.Errorf("due date changed without a new phrase")
				}
			},
		},
		"completed toggled": {
			input: task.UpdateInput{Completed: boolPtr(true)},
			check: func(t *testing.T, before, after model.Task) {
				if !after.Completed {
					t.Error("expected completed")
				}
			},
		},
		"new due phrase recomputes absolute date": {
			input: task.UpdateInput{DueDateText: strPtr("tomorrow")},
			check: func(t *testing.T, before, after model.Task) {
				want := time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC)
				if after.DueDateOriginalText != "tomorrow" || !after.DueDateAbsolute.Equal(want) {
					t.Errorf("unexpected due date %v %q", after.DueDateAbsolute, after.DueDateOriginalText)
				}
			},
		},
		"blank description rejected": {
			input:   task.UpdateInput{Description: strPtr(" ")},
			wantErr: task.ErrEmptyDescription,
		},
		"invalid priority rejected": {
			input:   task.UpdateInput{Priority: strPtr("P9")},
			wantErr: task.ErrInvalidPriority,
		},
		"unknown id": {
			input:   task.UpdateInput{ID: "0b7e4c55-6a3d-4f0e-9d1a-2f8c3e5b7a91"},
			wantErr: task.ErrTaskNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newTestUseCase(t, newFakeRepo(), nil, nil)
			out, err := uc.CreateBulk(context.Background(), alice, task.CreateBulkInput{Items: []task.BulkItem{
				{Description: strPtr("prepare slides"), Assignee: strPtr("Ken"), DueDateText: strPtr("next week"), Priority: strPtr("P2")},
			}})
			if err != nil {
				t.Fatalf("setup: %v", err)
			}
			before := out.Tasks[0]

			input := tc.input
			if input.ID == "" {
				input.ID = before.ID
			}
			after, err := uc.Update(context.Background(), alice, input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.check != nil {
				tc.check(t, before, after)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	r := newFakeRepo()
	uc := newTestUseCase(t, r, nil, nil)
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	out, _ := uc.CreateBulk(ctx, alice, task.CreateBulkInput{Items: []task.BulkItem{
		{Description: strPtr("clean up"), Assignee: strPtr("Jo")},
	}})
	id := out.Tasks[0].ID

	if err := uc.Delete(ctx, alice, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, alice, id); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Delete: expected ErrTaskNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, alice, ""); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("empty id: expected ErrTaskNotFound, got %v", err)
	}
}

func TestMalformedTaskID(t *testing.T) {
	alice := model.Scope{UserID: "alice"}

	tcs := map[string]struct {
		call func(uc *implUseCase, id string) error
	}{
		"detail": {
			call: func(uc *implUseCase, id string) error {
				_, err := uc.Detail(context.Background(), alice, id)
				return err
			},
		},
		"update": {
			call: func(uc *implUseCase, id string) error {
				_, err := uc.Update(context.Background(), alice, task.UpdateInput{ID: id, Completed: boolPtr(true)})
				return err
			},
		},
		"delete": {
			call: func(uc *implUseCase, id string) error {
				return uc.Delete(context.Background(), alice, id)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newFakeRepo()
			uc := newTestUseCase(t, r, nil, nil)

			for _, id := range []string{"not-a-uuid", "t1", "  "} {
				if err := tc.call(uc, id); !errors.Is(err, task.ErrTaskNotFound) {
					t.Errorf("id %q: expected ErrTaskNotFound, got %v", id, err)
				}
			}
			if r.getCalls != 0 {
				t.Errorf("expected repository not to be consulted, got %d calls", r.getCalls)
			}
		})
	}
}

func TestList(t *testing.T) {
	uc := newTestUseCase(t, newFakeRepo(), nil, nil)
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}

	empty, err := uc.List(ctx, alice, task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty.Tasks == nil {
		t.Error("expected an empty, non-nil slice")
	}

	out, _ := uc.CreateBulk(ctx, alice, task.CreateBulkInput{Items: []task.BulkItem{
		{Description: strPtr("one"), Assignee: strPtr("a")},
		{Description: strPtr("two"), Assignee: strPtr("b")},
	}})
	if _, err := uc.Update(ctx, alice, task.UpdateInput{ID: out.Tasks[0].ID, Completed: boolPtr(true)}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	open, err := uc.List(ctx, alice, task.ListInput{Completed: boolPtr(false)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(open.Tasks) != 1 || open.Tasks[0].Description != "two" {
		t.Errorf("expected only the open task, got %+v", open.Tasks)
	}
}

func boolPtr(b bool) *bool { return &b }
