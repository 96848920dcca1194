// Package internal contains private implementation details for the client.
// These packages are not intended for external use and may change without notice.
//
// The internal packages are organized as follows:
//   - operations: upload path implementations (direct and multipart)
//   - transport: the HTTP transport collaborator
//   - codec: the response serializer collaborator
//   - pool: reusable staging buffers
//   - validation: input validation shared by the public surface
//   - testutil: shared test doubles
package internal
