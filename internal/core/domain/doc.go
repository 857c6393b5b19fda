// Package domain defines the core business entities for leadline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Domain: A named topical scope grouping a question set
//   - Question: A prompt to be answered against conversations
//   - Conversation: An uploaded transcript scoped to one domain
//   - Result: The backend's answer to one question for one conversation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
