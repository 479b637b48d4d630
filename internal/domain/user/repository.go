package user

import "context"

// UserRepository defines data access for application users.
type UserRepository interface {
	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// ListEmployeeIDs returns the employee ids of all non-admin users,
	// used by the absent-marking job
	ListEmployeeIDs(ctx context.Context) ([]string, error)
}
