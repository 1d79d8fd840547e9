package presenter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zeebo/xxh3"
)

// Detail writes a single record with an ETag derived from the rendered
// body, answering 304 when the client already holds that version.
func Detail(c echo.Context, payload any) error {
	body, err := json.Marshal(Envelope{Data: payload})
	if err != nil {
		return err
	}

	tag := ETag(body)
	c.Response().Header().Set("ETag", tag)
	if matches(c.Request().Header.Get("If-None-Match"), tag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func ETag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxh3.Hash(body))
}

func matches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}
