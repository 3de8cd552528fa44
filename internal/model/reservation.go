package model

import "time"

// Reservation statuses.  A reservation in StatusBlock holds capacity
// (maintenance, owner use, temporary hold) without representing a
// paying guest; for conflict purposes it weighs the same as a real
// booking.
const (
    StatusHold       = "HOLD"
    StatusProvisory  = "PROVISORY"
    StatusConfirmed  = "CONFIRMED"
    StatusCheckedIn  = "CHECKED_IN"
    StatusCheckedOut = "CHECKED_OUT"
    StatusCancelled  = "CANCELLED"
    StatusBlock      = "BLOCK"
)

// Reservation types describe the booking channel.
const (
    TypeDefault  = "DEFAULT"
    TypeWeb      = "WEB"
    TypeOTA      = "OTA"
    TypeEmployee = "EMPLOYEE"
)

// Block kinds distinguish short-lived capacity holds from permanent
// blocks created through the calendar.  The kind is an explicit column
// rather than a magic booker id.
const (
    BlockKindTemp      = "TEMP"
    BlockKindPermanent = "PERMANENT"
)

// Reservation groups the room-nights and parking assignments booked by
// one client over a date range.  CheckIn and CheckOut are derived
// values: always the min/max date of the reservation's active details,
// with CheckOut one day past the last occupied night (exclusive).
//
// Fields:
//  ID             – opaque, globally unique identifier (UUID).
//  HotelID        – hotel the reservation belongs to.
//  ClientID       – the booker (reservation_clients.id).
//  CheckIn        – first occupied date, derived from details.
//  CheckOut       – day after the last occupied date, exclusive.
//  NumberOfPeople – guests covered by the reservation.
//  Status         – one of the Status* constants.
//  Type           – one of the Type* constants.
//  BlockKind      – TEMP or PERMANENT for StatusBlock rows, nil otherwise.
//  Comment        – free text entered by staff.
//  CreatedBy      – acting user id.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Reservation struct {
    ID             string     // reservations.id (UUID)
    HotelID        uint64     // reservations.hotel_id
    ClientID       uint64     // reservations.reservation_client_id
    CheckIn        time.Time  // reservations.check_in
    CheckOut       time.Time  // reservations.check_out
    NumberOfPeople int        // reservations.number_of_people
    Status         string     // reservations.status
    Type           string     // reservations.type
    BlockKind      *string    // reservations.block_kind (nullable)
    Comment        string     // reservations.comment
    CreatedBy      uint64     // reservations.created_by
    CreatedAt      time.Time  // reservations.created_at
    UpdatedAt      time.Time  // reservations.updated_at
}

// ReservationDetail is one room-night: the atomic unit of occupancy.
// For every (hotel_id, room_id, date) at most one detail with a null
// Cancelled timestamp may exist; the whole engine exists to protect
// this invariant.  Details are cancelled logically (Cancelled set) and
// reassigned, never physically deleted, when reservations merge.
//
// Fields:
//  ID             – primary key identifier.
//  HotelID        – hotel of the room.
//  ReservationID  – owning reservation.
//  RoomID         – occupied room.
//  Date           – the calendar day occupied.
//  NumberOfPeople – guests sleeping in the room that night.
//  Cancelled      – cancellation timestamp, nil while active.
//  Billable       – whether the night is billed.
type ReservationDetail struct {
    ID             uint64     // reservation_details.id
    HotelID        uint64     // reservation_details.hotel_id
    ReservationID  string     // reservation_details.reservation_id
    RoomID         uint64     // reservation_details.room_id
    Date           time.Time  // reservation_details.date
    NumberOfPeople int        // reservation_details.number_of_people
    Cancelled      *time.Time // reservation_details.cancelled (nullable)
    Billable       bool       // reservation_details.billable
}
