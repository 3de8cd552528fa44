// Package queue defines message payloads exchanged over the message broker.
package queue

// BlockCreatedEvent is published when a block reservation commits, both
// for ad-hoc blocks and calendar bulk blocks.  It carries enough for
// downstream consumers to log or notify without querying the primary
// database.  Dates use the YYYY-MM-DD layout; check_out is exclusive.
type BlockCreatedEvent struct {
    ReservationID string   `json:"reservation_id"`
    HotelID       uint64   `json:"hotel_id"`
    BlockKind     string   `json:"block_kind"` // TEMP or PERMANENT
    CheckIn       string   `json:"check_in"`
    CheckOut      string   `json:"check_out"`
    RoomIDs       []uint64 `json:"room_ids"`
    SpotIDs       []uint64 `json:"spot_ids,omitempty"`
    Warning       string   `json:"warning,omitempty"` // room shortfall summary in best-effort mode
    CreatedBy     uint64   `json:"created_by"`
    CreatedAt     string   `json:"created_at"`
}

// ReservationMergedEvent is published after two reservations of the
// same booker are merged; the source id no longer exists afterwards.
type ReservationMergedEvent struct {
    TargetID       string `json:"target_id"`
    SourceID       string `json:"source_id"`
    HotelID        uint64 `json:"hotel_id"`
    CheckIn        string `json:"check_in"`
    CheckOut       string `json:"check_out"`
    NumberOfPeople int    `json:"number_of_people"`
    MergedBy       uint64 `json:"merged_by"`
    MergedAt       string `json:"merged_at"`
}
