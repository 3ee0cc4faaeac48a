package postgre

import (
	"fmt"
	"strings"

	repo "meeting-task-extractor/internal/task/repository"
)

// buildListQuery builds the WHERE clause + args for List. The owner filter is always present.
func buildListQuery(opt repo.ListOptions) (string, []any) {
	conditions := []string{"owner_id = $1"}
	args := []any{opt.OwnerID}
	idx := 2

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
	}

	return strings.Join(conditions, " AND "), args
}
