package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tasklist-cli/internal/model"
)

var ErrDoctorIssuesFound = errors.New("doctor found errors")

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Key     string           `json:"key,omitempty"`
	ID      string           `json:"id,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// Doctor inspects the raw entries in kv. Load quietly discards what it can't
// use; Doctor reports it instead. Only store read failures are returned as
// errors.
func Doctor(ctx context.Context, kv KV) (DoctorReport, error) {
	var issues []DoctorIssue

	raw, ok, err := kv.Get(ctx, KeyLists)
	if err != nil {
		return DoctorReport{}, fmt.Errorf("read %s: %w", KeyLists, err)
	}
	var lists []model.TaskList
	if ok {
		if err := json.Unmarshal([]byte(raw), &lists); err != nil {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelError,
				Code:    "lists_invalid_json",
				Message: err.Error() + " (lists will load as empty)",
				Key:     KeyLists,
			})
		}
	}

	// List ids are unique across lists; task ids only within their list.
	seenLists := map[string]bool{}
	for _, l := range lists {
		issues = append(issues, checkID(seenLists, "list", l.ID)...)
		if strings.TrimSpace(l.Name) == "" {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "list_blank_name",
				Message: "list has a blank name",
				Key:     KeyLists,
				ID:      l.ID,
			})
		}
		seenTasks := map[string]bool{}
		for _, t := range l.Tasks {
			issues = append(issues, checkID(seenTasks, "task", t.ID)...)
		}
	}

	sel, ok, err := kv.Get(ctx, KeySelectedListID)
	if err != nil {
		return DoctorReport{}, fmt.Errorf("read %s: %w", KeySelectedListID, err)
	}
	sel = strings.TrimSpace(sel)
	switch {
	case !ok:
	case sel == nullMarker || sel == "":
		issues = append(issues, DoctorIssue{
			Level:   DoctorIssueLevelWarn,
			Code:    "selection_placeholder",
			Message: fmt.Sprintf("selection is %q; it is removed on next save", sel),
			Key:     KeySelectedListID,
		})
	default:
		found := false
		for _, l := range lists {
			if l.ID == sel {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, DoctorIssue{
				Level:   DoctorIssueLevelWarn,
				Code:    "selection_stale",
				Message: "selected list does not exist; nothing will be selected",
				Key:     KeySelectedListID,
				ID:      sel,
			})
		}
	}

	return DoctorReport{Issues: issuesOrEmpty(issues)}, nil
}

func checkID(seen map[string]bool, kind, id string) []DoctorIssue {
	if strings.TrimSpace(id) == "" {
		return []DoctorIssue{{
			Level:   DoctorIssueLevelError,
			Code:    kind + "_missing_id",
			Message: kind + " has no id",
			Key:     KeyLists,
		}}
	}
	if seen[id] {
		return []DoctorIssue{{
			Level:   DoctorIssueLevelError,
			Code:    "duplicate_id",
			Message: "id used more than once",
			Key:     KeyLists,
			ID:      id,
		}}
	}
	seen[id] = true
	return nil
}

func issuesOrEmpty(xs []DoctorIssue) []DoctorIssue {
	if xs == nil {
		return []DoctorIssue{}
	}
	return xs
}
