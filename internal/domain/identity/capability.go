package identity

import (
	"context"

	"github.com/google/uuid"
)

// Capability names something a user is allowed to do
type Capability string

const (
	// CapabilityTriage allows listing and re-statusing requests
	CapabilityTriage Capability = "triage"
	// CapabilitySubmit allows submitting requests
	CapabilitySubmit Capability = "submit"
)

// CapabilityChecker resolves whether a user holds a capability.
// Capabilities derive from profile attachment: an employee profile
// grants triage, a client profile grants submit. Services receive a
// checker instead of querying profiles ad hoc.
type CapabilityChecker interface {
	Has(ctx context.Context, userID uuid.UUID, capability Capability) (bool, error)
}
