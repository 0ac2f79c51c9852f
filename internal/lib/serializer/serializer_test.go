package serializer_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/request-params/internal/lib/serializer"
)

func TestJSON_Serialize(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = serializer.JSON{}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.JSON(http.StatusOK, map[string]any{"price": 0.5, "items": []string{}}))
	assert.JSONEq(t, `{"price":0.5,"items":[]}`, rec.Body.String())
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
}

func TestJSON_Deserialize(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = serializer.JSON{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A"}`))
	c := e.NewContext(req, httptest.NewRecorder())

	var body struct {
		Name string `json:"name"`
	}
	require.NoError(t, e.JSONSerializer.Deserialize(c, &body))
	assert.Equal(t, "A", body.Name)
}
