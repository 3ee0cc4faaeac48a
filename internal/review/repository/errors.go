package repository

import "errors"

var (
	ErrFailedToSave   = errors.New("failed to save draft")
	ErrFailedToGet    = errors.New("failed to get draft")
	ErrFailedToDelete = errors.New("failed to delete draft")
)

// Key is the storage key of a draft.
func Key(ownerID, id string) string {
	return "draft:" + ownerID + ":" + id
}
