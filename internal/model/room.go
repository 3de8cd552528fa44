package model

import "time"

// RoomType is a category rooms belong to.  Allocation requests target
// a room type, never a specific room; the allocator picks the concrete
// rooms.
//
// Fields:
//  ID      – primary key identifier.
//  HotelID – hotel this type belongs to.
//  Name    – human readable type name (e.g. "Double", "Suite").
type RoomType struct {
    ID      uint64 // room_types.id
    HotelID uint64 // room_types.hotel_id
    Name    string // room_types.name
}

// Room describes one physical room.  Rooms are uniquely identified by
// their hotel and room number.  AssignmentPriority is a nullable rank:
// when several rooms of the requested type are free, rooms with a lower
// priority value are assigned first and rooms without a priority come
// last.
//
// Fields:
//  ID                 – primary key identifier.
//  HotelID            – hotel to which this room belongs.
//  RoomTypeID         – type the room belongs to.
//  Floor              – floor the room is on.
//  RoomNumber         – door number, kept as a string ("101", "101A").
//  Capacity           – maximum number of guests.
//  Smoking            – whether smoking is allowed.
//  ForSale            – whether the room may be sold; rooms not for
//                       sale are invisible to the allocator.
//  AssignmentPriority – nullable assignment rank, lower wins.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Room struct {
    ID                 uint64    // rooms.id
    HotelID            uint64    // rooms.hotel_id
    RoomTypeID         uint64    // rooms.room_type_id
    Floor              int       // rooms.floor
    RoomNumber         string    // rooms.room_number
    Capacity           int       // rooms.capacity
    Smoking            bool      // rooms.smoking
    ForSale            bool      // rooms.for_sale
    AssignmentPriority *int      // rooms.assignment_priority (nullable)
    CreatedAt          time.Time // rooms.created_at
    UpdatedAt          time.Time // rooms.updated_at
}
