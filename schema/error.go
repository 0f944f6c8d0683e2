package schema

// Platform error codes carried in gateway error payloads.
const (
	// CodeInvalidParameter is returned when a request parameter fails
	// platform-side validation.
	CodeInvalidParameter = 1
	// CodeConnectionAlreadyExists is the reserved sentinel for an attempt to
	// connect an app the user already has a live connection for.
	CodeConnectionAlreadyExists = 222
)
