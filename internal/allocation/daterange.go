package allocation

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// DateRange is a half-open range of calendar days [From, To): To is
// the checkout day and is never occupied itself.
type DateRange struct {
    From time.Time
    To   time.Time
}

// ParseDateRange parses two YYYY-MM-DD strings into a DateRange.  An
// unparseable date or a To before From is a validation error.  From
// equal to To is allowed; callers that need at least one night use
// ExpandSingleDay or check Nights themselves.
func ParseDateRange(from, to string) (DateRange, error) {
    f, err := time.Parse(DateLayout, from)
    if err != nil {
        return DateRange{}, validationf("invalid from date %q", from)
    }
    t, err := time.Parse(DateLayout, to)
    if err != nil {
        return DateRange{}, validationf("invalid to date %q", to)
    }
    if t.Before(f) {
        return DateRange{}, validationf("date range inverted: %s after %s", from, to)
    }
    return DateRange{From: f, To: t}, nil
}

// ExpandSingleDay widens a zero-night range so a single selected day
// spans exactly one night.  Ranges already covering a night are
// returned unchanged.
func (r DateRange) ExpandSingleDay() DateRange {
    if r.From.Equal(r.To) {
        r.To = r.To.AddDate(0, 0, 1)
    }
    return r
}

// Nights returns the number of occupied nights in the range.
func (r DateRange) Nights() int {
    return int(r.To.Sub(r.From).Hours() / 24)
}

// Dates returns every occupied date in the range, in order.
func (r DateRange) Dates() []time.Time {
    dates := make([]time.Time, 0, r.Nights())
    for d := r.From; d.Before(r.To); d = d.AddDate(0, 0, 1) {
        dates = append(dates, d)
    }
    return dates
}

// FromString and ToString render the bounds in wire format.
func (r DateRange) FromString() string { return r.From.Format(DateLayout) }
func (r DateRange) ToString() string   { return r.To.Format(DateLayout) }
