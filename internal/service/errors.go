package service

// ValidationError represents a bad-request condition (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError represents a conflict condition (HTTP 409).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError indicates the requested resource was not found (HTTP 404).
// Cross-workspace lookups are reported as not-found rather than forbidden so
// that resource existence does not leak across workspaces.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ForbiddenError represents a structurally disallowed operation (HTTP 403),
// such as deleting the default workspace.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }
