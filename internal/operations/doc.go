// Package operations contains the core upload operation implementations.
// These functions handle the low-level protocol interactions for file
// ingestion: the single-request direct path and the three-phase
// multipart path.
//
// Each operation is isolated into its own subpackage for better organization
// and testability.
package operations
