package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SearchResults writes a 200 OK response with search results and tags the
// response with the source of its offers.
func SearchResults(c echo.Context, source string, results interface{}) error {
	SetDataSource(c, source)
	return c.JSON(http.StatusOK, results)
}
