package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestReadTranscript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standup.txt")
	if err := os.WriteFile(path, []byte("Ann will ship the release on Monday."), 0o600); err != nil {
		t.Fatal(err)
	}

	tcs := map[string]struct {
		file    string
		stdin   string
		want    string
		wantErr bool
	}{
		"from file":    {file: path, want: "Ann will ship the release on Monday."},
		"from stdin":   {file: "-", stdin: "Bo reviews the PR.", want: "Bo reviews the PR."},
		"missing file": {file: filepath.Join(dir, "nope.txt"), wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tc.stdin))

			got, err := readTranscript(cmd, tc.file)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExtractCmd_RequiresFile(t *testing.T) {
	cmd := extractCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "file") {
		t.Fatalf("expected missing --file error, got %v", err)
	}
}
