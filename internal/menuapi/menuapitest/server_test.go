package menuapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuview/internal/menu"
)

func do(t *testing.T, s *Server, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestList_Cursors(t *testing.T) {
	s := NewServer("")
	for i := 0; i < 4; i++ {
		s.Seed(menu.Item{Name: "x", Price: 1})
	}

	rec := do(t, s, http.MethodGet, "/menus?page=2&perPage=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Data         []menu.Item `json:"Data"`
			CurrentPage  int         `json:"currentPage"`
			Total        int         `json:"total"`
			PreviousPage *int        `json:"previousPage"`
			NextPage     *int        `json:"nextPage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Data, 1)
	assert.Equal(t, 2, body.Data.CurrentPage)
	assert.Equal(t, 4, body.Data.Total)
	require.NotNil(t, body.Data.PreviousPage)
	assert.Equal(t, 1, *body.Data.PreviousPage)
	assert.Nil(t, body.Data.NextPage)
}

func TestMutationsRequireToken(t *testing.T) {
	s := NewServer("secret")
	payload := `{"name":"Soup","description":"","imageUrl":"","price":4}`

	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/menu", "", payload).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/menu", "nope", payload).Code)
	assert.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/menu", "secret", payload).Code)
	require.Len(t, s.Items(), 1)

	id := s.Items()[0].ID.String()
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodPut, "/menu/"+id, "secret", `{"name":"Soup","price":5}`).Code)
	assert.Equal(t, 5.0, s.Items()[0].Price)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodDelete, "/menu/"+id, "secret", "").Code)
	assert.Empty(t, s.Items())
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodDelete, "/menu/"+id, "secret", "").Code)
}

func TestCreate_Validation(t *testing.T) {
	s := NewServer("")
	rec := do(t, s, http.MethodPost, "/menu", "any", `{"name":"Soup","price":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price must be greater than 0")

	rec = do(t, s, http.MethodPost, "/menu", "any", `{"name":" ","price":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestFailNextAndRequests(t *testing.T) {
	s := NewServer("")
	s.FailNext(http.StatusBadGateway, "<html>bad gateway</html>")

	rec := do(t, s, http.MethodGet, "/menus", "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/menus", "", "").Code)

	reqs := s.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/menus", reqs[0].Path)
}

func TestGet_NotFound(t *testing.T) {
	s := NewServer("")
	rec := do(t, s, http.MethodGet, "/menu/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Menu not found"}`, rec.Body.String())
}
