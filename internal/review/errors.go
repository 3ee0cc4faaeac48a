package review

import "errors"

var (
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrUnknownField    = errors.New("unknown candidate field")
	ErrEmptyWorkingSet = errors.New("there are no tasks to approve")
	ErrDraftNotFound   = errors.New("draft not found")
)
