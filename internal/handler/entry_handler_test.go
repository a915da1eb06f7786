package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/handler"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/repository"
	"github.com/nasrallahilyass/Personal-Diary-APP/internal/service"

	"github.com/stretchr/testify/require"
)

type entryBody struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func newTestServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Diary")
	svc := service.NewEntryService(repository.NewEntryRepository(root))

	e := echo.New()
	handler.NewEntryHandler(svc).RegisterRoutes(e.Group("/api"))
	return e, root
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func entryURL(date, author string) string {
	return "/api/entries/" + date + "?author=" + url.QueryEscape(author)
}

func TestEntryHandler_CreateAndGet(t *testing.T) {
	e, root := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/entries", `{"date":"2024-11-23","title":"Today","content":"Learned X","author":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entryBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, entryBody{Date: "2024-11-23", Title: "Today", Content: "Learned X", Author: "John Doe"}, created)

	_, err := os.Stat(filepath.Join(root, "2024", "11", "2024-11-23_John_Doe.yaml"))
	require.NoError(t, err)

	rec = do(e, http.MethodGet, entryURL("2024-11-23", "John Doe"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched entryBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.Equal(t, created, fetched)
}

func TestEntryHandler_Create_InvalidDate(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/entries", `{"date":"23/11/2024","title":"t","content":"c","author":"a"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/entries", `{"date":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Create_InvalidAuthor(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/entries", `{"date":"2024-11-23","title":"t","content":"c","author":"../x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Get_Errors(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, entryURL("2024-11-23", "Nobody"), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/api/entries/2024-11-23", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "author is required")

	rec = do(e, http.MethodGet, entryURL("2024-02-30", "a"), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Update(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPut, entryURL("2024-11-23", "John Doe"), `{"title":"New","content":"new"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/api/entries", `{"date":"2024-11-23","title":"Old","content":"old","author":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPut, entryURL("2024-11-23", "John Doe"), `{"title":"New","content":"line 1\nline 2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entryBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, entryBody{Date: "2024-11-23", Title: "New", Content: "line 1\nline 2", Author: "John Doe"}, updated)
}

func TestEntryHandler_Delete(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/entries", `{"date":"2024-11-23","title":"t","content":"c","author":"John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodDelete, entryURL("2024-11-23", "John Doe"), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodDelete, entryURL("2024-11-23", "John Doe"), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntryHandler_ListByMonth(t *testing.T) {
	e, _ := newTestServer(t)

	for _, body := range []string{
		`{"date":"2024-11-23","title":"A","content":"a","author":"John Doe"}`,
		`{"date":"2024-11-02","title":"B","content":"b","author":"Jane"}`,
		`{"date":"2024-12-01","title":"C","content":"c","author":"John Doe"}`,
	} {
		require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/entries", body).Code)
	}

	rec := do(e, http.MethodGet, "/api/entries?year=2024&month=11", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Entries []entryBody `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Entries, 2)
	require.Equal(t, "B", list.Entries[0].Title)
	require.Equal(t, "A", list.Entries[1].Title)

	rec = do(e, http.MethodGet, "/api/entries?year=1990&month=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"entries":[]}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/entries?year=2024&month=13", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/entries?year=2024", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Migrate(t *testing.T) {
	e, root := newTestServer(t)

	dir := filepath.Join(root, "2024", "11")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	legacy := "Date: 2024-11-23\nTitle: Today\nContent: Learned X\nAuthor: John Doe\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-11-23_John_Doe.txt"), []byte(legacy), 0o600))

	rec := do(e, http.MethodPost, "/api/migrations", `{"year":2024,"month":11}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"converted":1,"skipped":0,"failed":0}`, rec.Body.String())

	rec = do(e, http.MethodGet, entryURL("2024-11-23", "John Doe"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/api/migrations", `{"year":2024,"month":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
