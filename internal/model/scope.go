package model

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID    string
	Username  string
	Timezone  string
	SessionID string
}

// Location returns the caller's timezone name, defaulting to UTC.
func (sc Scope) Location() string {
	if sc.Timezone == "" {
		return DefaultTimezone
	}
	return sc.Timezone
}
