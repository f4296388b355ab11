// Package store persists the imported deck, the study session, and the front
// mode in a SQLite database inside the data directory.
//
// Reads never fail on bad data: a missing key or a blob that does not have
// the expected shape loads as an absent value, so a corrupt database degrades
// to "no deck" instead of blocking the user. Only I/O problems are errors.
package store
