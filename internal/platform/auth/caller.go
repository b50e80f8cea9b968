package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CallerID returns the authenticated caller's id as a UUID. A subject that
// is missing or not a UUID is treated as an authentication failure, not a
// client input error.
func CallerID(c echo.Context) (uuid.UUID, error) {
	uid := UserIDFromContext(c.Request().Context())
	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session subject")
	}
	return id, nil
}
