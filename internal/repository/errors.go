// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// allocation engine and handlers to distinguish between failure
// scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
// Repositories translate sql.ErrNoRows into this sentinel so callers
// do not need to import database/sql.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write cannot be performed because of
// conflicting state, such as inserting a detail for an already
// occupied (hotel, room, date) triple. The allocation workflows
// translate this into a conflict error for the caller.
var ErrConflict = errors.New("conflict")
