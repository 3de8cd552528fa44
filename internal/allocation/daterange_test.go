package allocation

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
    r, err := ParseDateRange("2026-03-10", "2026-03-13")
    require.NoError(t, err)
    assert.Equal(t, 3, r.Nights())
    assert.Equal(t, "2026-03-10", r.FromString())
    assert.Equal(t, "2026-03-13", r.ToString())
}

func TestParseDateRangeRejectsGarbage(t *testing.T) {
    _, err := ParseDateRange("10.03.2026", "2026-03-13")
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))

    _, err = ParseDateRange("2026-03-10", "not-a-date")
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
}

func TestParseDateRangeRejectsInverted(t *testing.T) {
    _, err := ParseDateRange("2026-03-13", "2026-03-10")
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
}

func TestParseDateRangeAllowsEqualBounds(t *testing.T) {
    r, err := ParseDateRange("2026-03-10", "2026-03-10")
    require.NoError(t, err)
    assert.Equal(t, 0, r.Nights())

    expanded := r.ExpandSingleDay()
    assert.Equal(t, 1, expanded.Nights())
    assert.Equal(t, "2026-03-11", expanded.ToString())

    // Ranges already covering a night stay untouched.
    r2, err := ParseDateRange("2026-03-10", "2026-03-12")
    require.NoError(t, err)
    assert.Equal(t, r2, r2.ExpandSingleDay())
}

func TestDatesExcludesCheckout(t *testing.T) {
    r, err := ParseDateRange("2026-02-27", "2026-03-02")
    require.NoError(t, err)

    dates := r.Dates()
    require.Len(t, dates, 3)
    assert.Equal(t, day("2026-02-27"), dates[0])
    assert.Equal(t, day("2026-02-28"), dates[1])
    assert.Equal(t, day("2026-03-01"), dates[2])
}
