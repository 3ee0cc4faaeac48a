package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"meeting-task-extractor/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentialsJSON(t *testing.T) {
	dir := t.TempDir()
	goodToken := filepath.Join(dir, "token.json")
	badToken := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(goodToken, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600)
	_ = os.WriteFile(badToken, []byte(`{"broken": true`), 0o600)

	tcs := map[string]struct {
		creds     string
		tokenPath string
		wantErr   bool
	}{
		"broken credentials":     {creds: `{"broken":true}`, tokenPath: goodToken, wantErr: true},
		"installed with token":   {creds: installedCreds, tokenPath: goodToken},
		"installed bad token":    {creds: installedCreds, tokenPath: badToken, wantErr: true},
		"installed missing file": {creds: installedCreds, tokenPath: filepath.Join(dir, "missing.json"), wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(tc.creds), tc.tokenPath)
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: "non-existent-file-path-12345.json"})
	if err == nil {
		t.Fatal("expected reading file error")
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCreateEvent(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &sent)
		_, _ = w.Write([]byte(`{"id":"event-123","summary":"Send the deck","htmlLink":"https://calendar.google.com/event-uri"}`))
	})

	due := time.Date(2024, 5, 3, 17, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Send the deck",
		StartTime: due.Add(-30 * time.Minute),
		EndTime:   due,
		Timezone:  "UTC",
		TaskID:    "task-1",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event %+v", event)
	}

	props, _ := sent["extendedProperties"].(map[string]any)
	private, _ := props["private"].(map[string]any)
	if private["task_id"] != "task-1" {
		t.Errorf("expected task_id extended property, got %v", sent["extendedProperties"])
	}
}

func TestCreateEvent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "primary",
		Summary:    "Title",
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatal("expected api error")
	}
}
