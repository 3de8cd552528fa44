package model

import "time"

// VehicleCategory describes a class of vehicle (car, van, bus) and how
// much parking capacity one vehicle of the class consumes.  A category
// with zero capacity units is considered unconfigured and is skipped
// silently by the parking allocator.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – category name.
//  CapacityUnits – abstract capacity one vehicle consumes.
type VehicleCategory struct {
    ID            uint64 // vehicle_categories.id
    Name          string // vehicle_categories.name
    CapacityUnits int    // vehicle_categories.capacity_units
}

// ParkingLot groups parking spots under a hotel.
//
// Fields:
//  ID      – primary key identifier.
//  HotelID – hotel the lot belongs to.
//  Name    – lot name.
type ParkingLot struct {
    ID      uint64 // parking_lots.id
    HotelID uint64 // parking_lots.hotel_id
    Name    string // parking_lots.name
}

// ParkingSpot is one assignable spot inside a lot.  Capacity is rated
// in the same abstract units as VehicleCategory.CapacityUnits; a spot
// can take a vehicle whose category requires at most that many units.
//
// Fields:
//  ID       – primary key identifier.
//  LotID    – lot the spot belongs to.
//  Label    – painted spot label ("P-12").
//  Capacity – capacity rating in units.
type ParkingSpot struct {
    ID       uint64 // parking_spots.id
    LotID    uint64 // parking_spots.parking_lot_id
    Label    string // parking_spots.label
    Capacity int    // parking_spots.capacity
}

// ReservationParking assigns a parking spot to a reservation for a
// date range.  It mirrors ReservationDetail's occupancy role for
// parking: two assignments for one spot must never overlap in time.
//
// Fields:
//  ID            – primary key identifier.
//  HotelID       – hotel of the spot.
//  ReservationID – owning reservation.
//  SpotID        – assigned spot.
//  FromDate      – first occupied date.
//  ToDate        – day after the last occupied date, exclusive.
//  UnitPrice     – nightly price for the spot.
type ReservationParking struct {
    ID            uint64    // reservation_parking.id
    HotelID       uint64    // reservation_parking.hotel_id
    ReservationID string    // reservation_parking.reservation_id
    SpotID        uint64    // reservation_parking.parking_spot_id
    FromDate      time.Time // reservation_parking.from_date
    ToDate        time.Time // reservation_parking.to_date
    UnitPrice     int       // reservation_parking.unit_price
}
