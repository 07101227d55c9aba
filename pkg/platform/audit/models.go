package audit

import (
	"context"
	"time"

	id "regate/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose. This
// enables different retention policies and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance,
	// such as recorded newsletter consent. Long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to abuse monitoring, such as
	// repeated registration attempts against claimed identifiers.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and visibility.
	// These can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category       EventCategory
	Timestamp      time.Time
	OrganizationID id.OrganizationID
	Action         Action
	// Email is recorded only for conflict events where compliance needs the
	// claimed identifier; rejected-field detail never includes raw values.
	Email string
	// Fields lists the input fields that failed validation, codes only.
	Fields    []string
	RequestID string
	ClientIP  string
}

// Action names an auditable registration outcome.
type Action string

const (
	ActionRegistrationValidated Action = "registration_validated"
	ActionRegistrationRejected  Action = "registration_rejected"
	ActionRegistrationConflict  Action = "registration_conflict"
)

// eventCategories is the source of truth for action classification.
var eventCategories = map[Action]EventCategory{
	ActionRegistrationValidated: CategoryCompliance,
	ActionRegistrationRejected:  CategoryOperations,
	ActionRegistrationConflict:  CategorySecurity,
}

// CategoryOf returns the category for an action, defaulting to operations for
// unknown actions so nothing is silently dropped.
func CategoryOf(action Action) EventCategory {
	if c, ok := eventCategories[action]; ok {
		return c
	}
	return CategoryOperations
}

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByOrganization(ctx context.Context, orgID id.OrganizationID) ([]Event, error)
}
