// Package memory provides in-memory repository implementations guarded
// by read-write mutexes. The panel runs on this backend in demo mode and
// in tests; the postgres adapter replaces it in production.
//
// The unit of work is trivial here: operations apply immediately and
// Begin/Commit/Rollback only exist to satisfy the transactional contract
// of the command handlers.
package memory
