// Package types defines the entity model, the KeyValue and Gateway
// contracts, the local key schema, and standard error types for the
// academic planner's dual-store persistence core.
package types
