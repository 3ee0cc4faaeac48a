package repository

type CreateOptions struct {
	Username     string
	PasswordHash string
	Timezone     string
}

// GetOneOptions filters by every non-empty field.
type GetOneOptions struct {
	ID       string
	Username string
}
