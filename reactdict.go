// Package reactdict provides a dictionary of React terminology backed by a
// hosted language model. Definitions are generated on demand, cached in
// memory and in SQLite, and moderated by an admin. Users keep bookmarks and
// a short search history, and the HTTP API serves a static front end.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, fuzzy/).
package reactdict
