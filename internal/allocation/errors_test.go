package allocation

import (
    "errors"
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
    assert.Equal(t, KindValidation, KindOf(validationf("bad input")))
    assert.Equal(t, KindConflict, KindOf(conflictf("taken")))
    assert.Equal(t, KindShortage, KindOf(shortagef("not enough")))
    assert.Equal(t, KindStorage, KindOf(storage("query", errors.New("boom"))))

    // Unclassified errors count as storage failures.
    assert.Equal(t, KindStorage, KindOf(errors.New("plain")))

    // Classification survives wrapping.
    wrapped := fmt.Errorf("outer: %w", conflictf("taken"))
    assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestErrorUnwrap(t *testing.T) {
    cause := errors.New("disk full")
    err := storage("insert details", cause)
    assert.ErrorIs(t, err, cause)
    assert.Contains(t, err.Error(), "insert details")
    assert.Contains(t, err.Error(), "disk full")
}
