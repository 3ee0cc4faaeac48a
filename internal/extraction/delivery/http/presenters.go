package http

import (
	"strings"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/model"
)

const noTasksMessage = "No action items were found in this transcript."

type extractReq struct {
	Transcript string `json:"transcript"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errWrongBody
	}
	return nil
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{Transcript: r.Transcript}
}

type candidateResp struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	DueDateText string `json:"due_date_text"`
	Priority    string `json:"priority"`
}

func newCandidateResps(cs []model.Candidate) []candidateResp {
	out := make([]candidateResp, len(cs))
	for i, c := range cs {
		out[i] = candidateResp{
			Description: c.Description,
			Assignee:    c.Assignee,
			DueDateText: c.DueDateText,
			Priority:    string(c.Priority),
		}
	}
	return out
}

type extractResp struct {
	Tasks   []candidateResp `json:"tasks"`
	Count   int             `json:"count"`
	Dropped int             `json:"dropped"`
	Message string          `json:"message,omitempty"`
}

func (h *handler) newExtractResp(out extraction.ExtractOutput) extractResp {
	resp := extractResp{
		Tasks:   newCandidateResps(out.Candidates),
		Count:   out.Count,
		Dropped: out.Dropped,
	}
	if out.Count == 0 {
		resp.Message = noTasksMessage
	}
	return resp
}
