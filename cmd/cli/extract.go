package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"meeting-task-extractor/internal/extraction"
	extractionUC "meeting-task-extractor/internal/extraction/usecase"
	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/pkg/datemath"
	"meeting-task-extractor/pkg/llmprovider"
)

type extractedTask struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	DueDateText string `json:"due_date_text"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
}

type extractResult struct {
	Tasks   []extractedTask `json:"tasks"`
	Dropped int             `json:"dropped"`
}

func extractCmd() *cobra.Command {
	var (
		file     string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract tasks from a transcript file and print them as JSON",
		Long: `Runs the same extraction as POST /api/v1/extractions without storing anything.

Examples:
  cli extract --file standup.txt
  cat standup.txt | cli extract --file - --timezone Europe/Berlin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := readTranscript(cmd, file)
			if err != nil {
				return err
			}

			cfg, logger, err := loadRuntime()
			if err != nil {
				return err
			}
			if err := cfg.LLM.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()

			manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
			if err != nil {
				return err
			}
			parser, err := datemath.NewParser(timezone)
			if err != nil {
				return err
			}

			uc := extractionUC.New(logger, manager, extractionUC.Config{
				Timeout:            cfg.Extraction.Timeout,
				MaxTranscriptChars: cfg.Extraction.MaxTranscriptChars,
				Temperature:        cfg.Extraction.Temperature,
			})

			out, err := uc.Extract(ctx, model.Scope{UserID: "cli", Timezone: timezone}, extraction.ExtractInput{Transcript: transcript})
			if err != nil && !errors.Is(err, extraction.ErrNoTasksFound) {
				return err
			}

			res := extractResult{Tasks: make([]extractedTask, 0, len(out.Candidates)), Dropped: out.Dropped}
			for _, c := range out.Candidates {
				t := extractedTask{
					Description: c.Description,
					Assignee:    c.Assignee,
					DueDateText: c.DueDateText,
					Priority:    string(c.Priority),
				}
				if due, err := parser.Parse(c.DueDateText, timezone); err == nil {
					t.DueDate = due.Format(time.RFC3339)
				}
				res.Tasks = append(res.Tasks, t)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "transcript file, or - for stdin")
	cmd.Flags().StringVar(&timezone, "timezone", model.DefaultTimezone, "IANA timezone used to resolve due dates")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readTranscript(cmd *cobra.Command, file string) (string, error) {
	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(raw), nil
}
