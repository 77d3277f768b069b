// Package services implements the core retrieval and answer-composition
// pipeline: the retrieval merger, the search service, the answer composer,
// and session management. Services depend only on the driven ports.
package services
