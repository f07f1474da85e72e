package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
	router.GET("/v1/courses/:course_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/courses/3", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	output := scrape(t, provider)
	// Labels carry the route pattern, never the concrete path.
	assert.Regexp(t, `test_app_http_requests_total\{[^}]*path="/v1/courses/:course_id"[^}]*\} 1`, output)
	assert.NotContains(t, output, `path="/v1/courses/3"`)
}

func TestHTTPMetricsMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/no/such/route", nil))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	output := scrape(t, provider)
	assert.Regexp(t, `test_app_http_requests_total\{[^}]*path="unknown"[^}]*\} 1`, output)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "unknown", sanitizePath(""))
	assert.Equal(t, "/v1/courses/:course_id", sanitizePath("/v1/courses/:course_id"))
}
