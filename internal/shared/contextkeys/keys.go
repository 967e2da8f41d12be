package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "storefront-api context key " + string(c)
}

// RequestIDKey is the key for the per-request identifier in context.Context
const RequestIDKey = contextKey("requestID")

// CollectionKey is the key for the collection name a request targets
const CollectionKey = contextKey("collection")

// ComponentKey is the key for the component emitting a log entry
const ComponentKey = contextKey("component")

// OperationKey is the key for the CRUD operation being performed
const OperationKey = contextKey("operation")
