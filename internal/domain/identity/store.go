package identity

import "context"

// EnrollmentStore persists a new user together with its profile in one
// database transaction. Either both rows commit or neither does, so a
// failed enrollment never leaves a profileless user behind.
type EnrollmentStore interface {
	EnrollClient(ctx context.Context, user *User, profile *ClientProfile) error
	EnrollEmployee(ctx context.Context, user *User, profile *EmployeeProfile) error
}
