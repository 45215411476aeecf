package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const apiVersion = "v1.0.0"

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/", s.handleVersion)
	s.Router.GET("/healthcheck", s.healthCheck)
}

// handleVersion godoc
// @Summary API version
// @Tags health
// @Success 200 {object} map[string]string
// @Router / [get]
func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"api": apiVersion,
	})
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "OK",
	})
}
