package identity

import (
	"context"

	"github.com/carshowroom/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// ProfileCapabilityChecker resolves capabilities from profile
// attachment: an employee profile grants triage, a client profile
// grants submit. This is the only capability strategy in the system.
type ProfileCapabilityChecker struct {
	clientRepo   identity.ClientProfileRepository
	employeeRepo identity.EmployeeProfileRepository
}

// NewProfileCapabilityChecker creates the profile-based checker
func NewProfileCapabilityChecker(clientRepo identity.ClientProfileRepository, employeeRepo identity.EmployeeProfileRepository) *ProfileCapabilityChecker {
	return &ProfileCapabilityChecker{
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

// Has reports whether the user holds the capability
func (c *ProfileCapabilityChecker) Has(ctx context.Context, userID uuid.UUID, capability identity.Capability) (bool, error) {
	switch capability {
	case identity.CapabilityTriage:
		return c.employeeRepo.ExistsForUser(ctx, userID)
	case identity.CapabilitySubmit:
		return c.clientRepo.ExistsForUser(ctx, userID)
	default:
		return false, nil
	}
}

var _ identity.CapabilityChecker = (*ProfileCapabilityChecker)(nil)
