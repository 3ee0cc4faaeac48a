package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/scope"
)

type mockUseCase struct {
	draft   review.Draft
	approve review.ApproveOutput
	editIn  review.EditItemInput
	err     error
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input review.CreateInput) (review.Draft, error) {
	return m.draft, m.err
}
func (m *mockUseCase) Get(ctx context.Context, sc model.Scope, id string) (review.Draft, error) {
	return m.draft, m.err
}
func (m *mockUseCase) EditItem(ctx context.Context, sc model.Scope, input review.EditItemInput) (review.Draft, error) {
	m.editIn = input
	return m.draft, m.err
}
func (m *mockUseCase) RemoveItem(ctx context.Context, sc model.Scope, id string, index int) (review.Draft, error) {
	return m.draft, m.err
}
func (m *mockUseCase) AppendItem(ctx context.Context, sc model.Scope, id string) (review.Draft, error) {
	return m.draft, m.err
}
func (m *mockUseCase) Approve(ctx context.Context, sc model.Scope, id string) (review.ApproveOutput, error) {
	return m.approve, m.err
}
func (m *mockUseCase) Cancel(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

type stubParser struct{}

func (stubParser) Parse(text, timezone string) (time.Time, error) {
	if text == "Friday" {
		return time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), nil
	}
	return time.Time{}, errors.New("unparseable")
}

func serve(t *testing.T, uc review.UseCase, method, body string, params gin.Params, call func(h *handler, c *gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/api/v1/drafts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req.WithContext(scope.SetScopeToContext(req.Context(), model.Scope{UserID: "u1"}))
	c.Params = params

	call(New(log.NewNop(), uc, stubParser{}), c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestCreate(t *testing.T) {
	t.Run("renders items with widget values", func(t *testing.T) {
		uc := &mockUseCase{draft: review.Draft{
			ID: "d1",
			Set: review.NewWorkingSet([]model.Candidate{
				{Description: "update the database schema", Assignee: "John", DueDateText: "Friday", Priority: model.PriorityP3},
				{Description: "lunch", Assignee: "Kai", DueDateText: "next Friday at noon", Priority: model.PriorityP4},
			}),
			Dropped: 1,
		}}

		w := serve(t, uc, http.MethodPost, `{"transcript":"John will update the database schema by Friday."}`, nil, (*handler).Create)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data draftResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Count != 2 || resp.Data.Dropped != 1 || resp.Data.Message != "" {
			t.Errorf("unexpected draft %+v", resp.Data)
		}
		if got := resp.Data.Items[0].DueDateInput; got != "2024-03-15T23:59" {
			t.Errorf("expected widget value, got %q", got)
		}
		if got := resp.Data.Items[1]; got.DueDateInput != "" || got.DueDateText != "next Friday at noon" {
			t.Errorf("unparseable phrase must keep its text and leave the widget empty: %+v", got)
		}
	})

	t.Run("empty draft carries a message", func(t *testing.T) {
		uc := &mockUseCase{draft: review.Draft{ID: "d1", Set: review.NewWorkingSet(nil)}}
		w := serve(t, uc, http.MethodPost, `{"transcript":"weather talk"}`, nil, (*handler).Create)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), noTasksMessage) {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestErrors(t *testing.T) {
	id := gin.Params{{Key: "id", Value: "d1"}}
	idIndex := gin.Params{{Key: "id", Value: "d1"}, {Key: "index", Value: "0"}}

	tcs := map[string]struct {
		uc         *mockUseCase
		method     string
		body       string
		params     gin.Params
		call       func(h *handler, c *gin.Context)
		wantStatus int
	}{
		"blank transcript": {
			uc: &mockUseCase{}, method: http.MethodPost, body: `{"transcript":" "}`,
			call: (*handler).Create, wantStatus: http.StatusBadRequest,
		},
		"model failure": {
			uc: &mockUseCase{err: extraction.ErrExtractionFailed}, method: http.MethodPost, body: `{"transcript":"notes"}`,
			call: (*handler).Create, wantStatus: http.StatusBadGateway,
		},
		"draft not found": {
			uc: &mockUseCase{err: review.ErrDraftNotFound}, method: http.MethodGet,
			params: id, call: (*handler).Get, wantStatus: http.StatusNotFound,
		},
		"non numeric index": {
			uc: &mockUseCase{}, method: http.MethodPatch, body: `{"field":"assignee","value":"x"}`,
			params: gin.Params{{Key: "id", Value: "d1"}, {Key: "index", Value: "first"}},
			call:   (*handler).EditItem, wantStatus: http.StatusBadRequest,
		},
		"unknown field": {
			uc: &mockUseCase{err: review.ErrUnknownField}, method: http.MethodPatch, body: `{"field":"owner","value":"x"}`,
			params: idIndex, call: (*handler).EditItem, wantStatus: http.StatusBadRequest,
		},
		"index out of range": {
			uc: &mockUseCase{err: review.ErrIndexOutOfRange}, method: http.MethodDelete,
			params: idIndex, call: (*handler).RemoveItem, wantStatus: http.StatusNotFound,
		},
		"approve empty draft": {
			uc: &mockUseCase{err: review.ErrEmptyWorkingSet}, method: http.MethodPost,
			params: id, call: (*handler).Approve, wantStatus: http.StatusBadRequest,
		},
		"cancel": {
			uc: &mockUseCase{}, method: http.MethodDelete,
			params: id, call: (*handler).Cancel, wantStatus: http.StatusNoContent,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := serve(t, tc.uc, tc.method, tc.body, tc.params, tc.call)
			if w.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestEditItemPassesInput(t *testing.T) {
	uc := &mockUseCase{draft: review.Draft{ID: "d1", Set: review.NewWorkingSet(nil)}}
	params := gin.Params{{Key: "id", Value: "d1"}, {Key: "index", Value: "2"}}

	w := serve(t, uc, http.MethodPatch, `{"field":"due_date_text","value":"2024-03-20T09:30"}`, params, (*handler).EditItem)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := review.EditItemInput{DraftID: "d1", Index: 2, Field: review.FieldDueDateText, Value: "2024-03-20T09:30"}
	if uc.editIn != want {
		t.Errorf("expected %+v, got %+v", want, uc.editIn)
	}
}
