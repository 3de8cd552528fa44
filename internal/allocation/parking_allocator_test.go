package allocation

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

func TestParkingAllocateSkipsUnconfiguredCategory(t *testing.T) {
    store := &fakeParkingStore{units: 0}
    a := NewParkingAllocator(store)

    spots, err := a.Allocate(context.Background(), nil, 1, 42, testRange(t), 2)
    require.NoError(t, err)
    assert.Nil(t, spots)
    // The availability scan must not even run.
    assert.Equal(t, 0, store.gotUnits)
}

func TestParkingAllocatePicksFirstSpots(t *testing.T) {
    store := &fakeParkingStore{
        units: 2,
        spots: []model.ParkingSpot{
            {ID: 1, Label: "P-01", Capacity: 2},
            {ID: 2, Label: "P-02", Capacity: 3},
            {ID: 3, Label: "P-03", Capacity: 2},
        },
    }
    a := NewParkingAllocator(store)

    spots, err := a.Allocate(context.Background(), nil, 1, 42, testRange(t), 2)
    require.NoError(t, err)
    require.Len(t, spots, 2)
    assert.Equal(t, uint64(1), spots[0].ID)
    assert.Equal(t, uint64(2), spots[1].ID)
    assert.Equal(t, 2, store.gotUnits)
}

func TestParkingAllocateShortageIsHardError(t *testing.T) {
    store := &fakeParkingStore{
        units: 2,
        spots: []model.ParkingSpot{{ID: 1, Label: "P-01", Capacity: 2}},
    }
    a := NewParkingAllocator(store)

    spots, err := a.Allocate(context.Background(), nil, 1, 42, testRange(t), 2)
    require.Error(t, err)
    assert.Equal(t, KindShortage, KindOf(err))
    assert.Nil(t, spots)
}

func TestParkingAllocateRejectsNonPositiveCount(t *testing.T) {
    a := NewParkingAllocator(&fakeParkingStore{units: 2})
    _, err := a.Allocate(context.Background(), nil, 1, 42, testRange(t), 0)
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
}
