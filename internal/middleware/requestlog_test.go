package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithLogger(req *http.Request) (*httptest.ResponseRecorder, string) {
	var seenID string
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		seenID = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seenID
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	t.Parallel()

	w, seenID := serveWithLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seenID)
	_, err := uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, w.Header().Get("X-Request-Id"))
}

func TestRequestLogger_KeepsCallerID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "caller-supplied")

	w, seenID := serveWithLogger(req)

	assert.Equal(t, "caller-supplied", seenID)
	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-Id"))
}
