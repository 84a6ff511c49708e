package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "summary-generator context key " + string(c)
}

// UsernameKey is the key for the authenticated username in context.Context
const UsernameKey = contextKey("username")

// RequestIDKey is the key for the request ID in context.Context
const RequestIDKey = contextKey("requestID")

// OperationKey is the key for the operation name used by the logger
const OperationKey = contextKey("operation")
