package domain

import dErrors "regate/pkg/domain-errors"

// Status is a user's declared affiliation category chosen at registration.
// Invariant: the value must be one of the catalog entries below.
//
// Usage: construct via ParseStatus at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Status string

// Catalog statuses.
const (
	StatusStudent  Status = "student"
	StatusTeacher  Status = "teacher"
	StatusPersonal Status = "personal"
	StatusPartner  Status = "partner"
)

// StatusEntry is one catalog row. Hidden marks statuses that are accepted on
// submission but not offered as a regular choice; ScopePrefix is advisory
// metadata for the presentation layer when it narrows provenance options.
type StatusEntry struct {
	Value       Status `json:"value"`
	Hidden      bool   `json:"hidden,omitempty"`
	ScopePrefix string `json:"scope_prefix,omitempty"`
}

// statusCatalog is the single source of truth for valid statuses. Order is
// presentation order.
var statusCatalog = []StatusEntry{
	{Value: StatusStudent, ScopePrefix: "SE"},
	{Value: StatusTeacher, ScopePrefix: "ST"},
	{Value: StatusPersonal, ScopePrefix: "SP"},
	{Value: StatusPartner, Hidden: true},
}

var statusIndex = func() map[Status]StatusEntry {
	m := make(map[Status]StatusEntry, len(statusCatalog))
	for _, entry := range statusCatalog {
		m[entry.Value] = entry
	}
	return m
}()

// Statuses returns the ordered catalog. Callers get a copy so the catalog
// stays immutable.
func Statuses() []StatusEntry {
	out := make([]StatusEntry, len(statusCatalog))
	copy(out, statusCatalog)
	return out
}

// ParseStatus constructs a Status from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not in the
// catalog; no other errors are expected.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "status cannot be empty")
	}
	st := Status(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown status")
	}
	return st, nil
}

// IsValid checks membership in the catalog.
func (s Status) IsValid() bool {
	_, ok := statusIndex[s]
	return ok
}

// Hidden reports whether the status is accepted but not presented as a
// regular choice.
func (s Status) Hidden() bool {
	return statusIndex[s].Hidden
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
