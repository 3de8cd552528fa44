package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
)

// engineError renders an allocation engine error as JSON with the
// status code its kind maps to.  Storage errors (and anything that is
// not an allocation.Error) never leak internals to the client.
func engineError(c echo.Context, err error) error {
    var ae *allocation.Error
    msg := "internal error"
    if errors.As(err, &ae) {
        msg = ae.Message
    }
    switch allocation.KindOf(err) {
    case allocation.KindValidation:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    case allocation.KindConflict:
        return c.JSON(http.StatusConflict, echo.Map{"error": msg})
    case allocation.KindShortage:
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": msg})
    default:
        c.Logger().Errorf("engine failure: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
    }
}

// actorID extracts the authenticated staff id stored by JWTAuth.  JWT
// numeric claims decode as float64; tokens from other issuers may carry
// the subject as a string.
func actorID(c echo.Context) uint64 {
    switch v := c.Get("user_id").(type) {
    case float64:
        return uint64(v)
    case string:
        if n, err := strconv.ParseUint(v, 10, 64); err == nil {
            return n
        }
    }
    return 0
}

// pathUint64 parses a numeric path parameter; zero means absent or bad.
func pathUint64(c echo.Context, name string) uint64 {
    n, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil {
        return 0
    }
    return n
}
