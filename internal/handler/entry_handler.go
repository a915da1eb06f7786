package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

func (h *EntryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/entries", h.Create)
	g.GET("/entries", h.ListByMonth)
	g.GET("/entries/:date", h.Get)
	g.PUT("/entries/:date", h.Update)
	g.DELETE("/entries/:date", h.Delete)
	g.POST("/migrations", h.Migrate)
}

type entryResponse struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
}

type createEntryRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type updateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type migrationRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type migrationResponse struct {
	Converted int `json:"converted"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Create adds a diary entry, replacing any entry with the same date and author.
// @Summary Add an entry
// @Description Write an entry keyed by date and author; an existing entry is overwritten
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body createEntryRequest true "Entry to add"
// @Success 201 {object} entryResponse
// @Failure 400 {object} errorResponse
// @Router /entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	entry, err := h.service.Add(c.Request().Context(), model.NewEntry(date, req.Title, req.Content, req.Author))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// ListByMonth returns the entries of one month.
// @Summary List entries of a month
// @Tags entries
// @Produce json
// @Param year query int true "Year, e.g. 2024"
// @Param month query int true "Month, 1-12"
// @Success 200 {object} entryListResponse
// @Failure 400 {object} errorResponse
// @Router /entries [get]
func (h *EntryHandler) ListByMonth(c echo.Context) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid year or month")
	}
	entries, err := h.service.ListByMonth(c.Request().Context(), year, month)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := entryListResponse{Entries: make([]entryResponse, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toEntryResponse(entry))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns the entry for a date and author.
// @Summary Get an entry
// @Tags entries
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param author query string true "Author"
// @Success 200 {object} entryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{date} [get]
func (h *EntryHandler) Get(c echo.Context) error {
	date, author, err := h.parseKey(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	entry, err := h.service.Search(c.Request().Context(), date, author)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// Update replaces the title and content of an existing entry.
// @Summary Edit an entry
// @Tags entries
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param author query string true "Author"
// @Param entry body updateEntryRequest true "New title and content"
// @Success 200 {object} entryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{date} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	date, author, err := h.parseKey(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	entry, err := h.service.Edit(c.Request().Context(), date, author, req.Title, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryResponse(entry))
}

// Delete removes an entry.
// @Summary Delete an entry
// @Tags entries
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param author query string true "Author"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{date} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	date, author, err := h.parseKey(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	if err := h.service.Delete(c.Request().Context(), date, author); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Migrate converts the line-format records of one month.
// @Summary Migrate legacy records
// @Description Convert the old four-line text records of a month into the current format
// @Tags migrations
// @Accept json
// @Produce json
// @Param request body migrationRequest true "Month to migrate"
// @Success 200 {object} migrationResponse
// @Failure 400 {object} errorResponse
// @Router /migrations [post]
func (h *EntryHandler) Migrate(c echo.Context) error {
	var req migrationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	result, err := h.service.MigrateLegacy(c.Request().Context(), req.Year, req.Month)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, migrationResponse{
		Converted: result.Converted,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	})
}

func (h *EntryHandler) parseKey(c echo.Context) (date time.Time, author string, err error) {
	date, err = parseDateParam(c, "date")
	if err != nil {
		return date, "", errInvalidDate
	}
	author, err = parseAuthorQuery(c)
	if err != nil {
		return date, "", err
	}
	return date, author, nil
}

func toEntryResponse(entry model.Entry) entryResponse {
	return entryResponse{
		Date:    entry.Date.Format(model.DateLayout),
		Title:   entry.Title,
		Content: entry.Content,
		Author:  entry.Author,
	}
}
