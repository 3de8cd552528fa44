package model

import "time"

// Hotel identifies a property managed by the system.  A hotel owns
// rooms, room types and parking lots; the engine only ever needs its
// identity to scope allocation queries.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the property.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
    ID        uint64    // hotels.id
    Name      string    // hotels.name
    CreatedAt time.Time // hotels.created_at
    UpdatedAt time.Time // hotels.updated_at
}
