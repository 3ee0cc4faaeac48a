package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	tcs := map[string]struct {
		err      error
		wantOK   bool
		wantCode int
	}{
		"direct":  {err: ErrNotFound, wantOK: true, wantCode: http.StatusNotFound},
		"wrapped": {err: fmt.Errorf("handler: %w", ErrTooManyRequests), wantOK: true, wantCode: http.StatusTooManyRequests},
		"plain":   {err: errors.New("boom")},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			he, ok := AsHTTPError(tc.err)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if ok && he.Code != tc.wantCode {
				t.Errorf("expected code %d, got %d", tc.wantCode, he.Code)
			}
		})
	}
}
