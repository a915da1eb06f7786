package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

var (
	errInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	errMissingAuthor = errors.New("author is required")
)

func parseDateParam(c echo.Context, name string) (time.Time, error) {
	return model.ParseDate(c.Param(name))
}

// parseAuthorQuery reads the author from the query string. An empty author is
// a valid key, so only a missing parameter is rejected.
func parseAuthorQuery(c echo.Context) (string, error) {
	values := c.QueryParams()
	if !values.Has("author") {
		return "", errMissingAuthor
	}
	return values.Get("author"), nil
}

func parseYearMonth(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
