// Package domain contains the core business entities and rules for the
// Oklahoma legal research pipeline: queries, documents, search hits,
// conversation sessions, and generated answers.
//
// Entities here have no knowledge of Pinecone, SQLite, OpenAI, or any other
// infrastructure. Adapters translate between provider formats and these types.
package domain
