package handler

import (
	"encoding/json"

	"client-hub/internal/validation"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

// respondFieldErrors renders a validation failure as a field → messages
// map under the error key, the shape the dashboard renders inline.
func respondFieldErrors(c echo.Context, status int, errs validation.FieldErrors) error {
	return c.JSON(status, map[string]validation.FieldErrors{jsonKeyError: errs})
}

// decodePayload reads the request body as a loose JSON object. A body
// that cannot be parsed yields nil, which the validator reports as every
// required field missing - malformed input is a validation failure, not
// a server fault. Numbers are kept as json.Number so budget coercion
// does not lose precision.
func decodePayload(c echo.Context) map[string]interface{} {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil
	}

	return payload
}
