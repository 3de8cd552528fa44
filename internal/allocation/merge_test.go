package allocation

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/hotel-property-management/internal/repository"
)

func span(min, max string, people, nights int) repository.Span {
    return repository.Span{MinDate: day(min), MaxDate: day(max), MaxPeople: people, Nights: nights}
}

func TestClassifySpansSameDates(t *testing.T) {
    target := span("2026-05-01", "2026-05-03", 2, 3)
    source := span("2026-05-01", "2026-05-03", 4, 3)
    // Same dates are eligible even with different people counts.
    assert.Equal(t, relationSameDates, classifySpans(target, source))
}

func TestClassifySpansContiguous(t *testing.T) {
    target := span("2026-05-01", "2026-05-03", 2, 3)
    source := span("2026-05-04", "2026-05-06", 2, 3)
    assert.Equal(t, relationContiguous, classifySpans(target, source))
    // Order does not matter.
    assert.Equal(t, relationContiguous, classifySpans(source, target))
}

func TestClassifySpansGapIsNotContiguous(t *testing.T) {
    target := span("2026-05-01", "2026-05-03", 2, 3)
    source := span("2026-05-05", "2026-05-06", 2, 2)
    assert.Equal(t, relationNone, classifySpans(target, source))
}

func TestClassifySpansOverlapIsNotEligible(t *testing.T) {
    target := span("2026-05-01", "2026-05-04", 2, 4)
    source := span("2026-05-03", "2026-05-06", 2, 4)
    assert.Equal(t, relationNone, classifySpans(target, source))
}

func TestClassifySpansEmptySpan(t *testing.T) {
    target := span("2026-05-01", "2026-05-03", 2, 3)
    empty := repository.Span{}
    assert.Equal(t, relationNone, classifySpans(target, empty))
    assert.Equal(t, relationNone, classifySpans(empty, target))
}

func TestClassifySpansSingleNightChain(t *testing.T) {
    target := span("2026-05-01", "2026-05-01", 1, 1)
    source := span("2026-05-02", "2026-05-02", 1, 1)
    assert.Equal(t, relationContiguous, classifySpans(target, source))
}
