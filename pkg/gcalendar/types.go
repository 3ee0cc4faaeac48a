package gcalendar

import "time"

// Config locates the Google credentials. TokenPath is only read for OAuth desktop credentials.
type Config struct {
	CredentialsPath string
	TokenPath       string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"

	// TaskID is stored as a private extended property so events can be traced back.
	TaskID string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
