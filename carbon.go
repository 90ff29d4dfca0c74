// Package carbon implements a retrieval-augmented chatbot for the IBM
// Carbon Design System documentation. A crawler collects documentation
// pages into a JSON document file, a build pipeline chunks and embeds
// them into a persisted vector index, and an interactive chat loop
// retrieves relevant chunks and streams grounded answers from a
// language model.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// openai/, goquery/).
package carbon
