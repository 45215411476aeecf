package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"movieapi/errs"
	"movieapi/movie"
)

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

func (s *Server) RegisterMovieRoutes() {
	g := s.Router.Group("/movies")
	g.GET("", s.handleListMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/:id", s.handleGetMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
	g.OPTIONS("/:id", s.handleMovieOptions)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Filter and paginate movies. Requests without offset or limit are redirected to offset=0&limit=5.
// @Tags movies
// @Produce json
// @Param offset query int true "Page index"
// @Param limit query int true "Page size"
// @Success 200 {object} movie.Page
// @Success 302
// @Failure 400 {object} errorResponse
// @Failure 500 {object} messageResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	params, err := movie.ParseParams(c.QueryString())
	if err != nil {
		return err
	}

	path := c.Request().URL.Path
	req, redirect := movie.Normalize(path, params)
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}

	q, err := req.Query(path)
	if err != nil {
		return err
	}

	page, err := s.MovieService.List(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} messageResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	m, err := s.MovieService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param request body CreateMovieRequest true "Movie"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} errorResponse
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.Create(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Partially update a movie; only the supplied fields change.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} errorResponse
// @Failure 404 {object} messageResponse
// @Router /movies/{id} [patch]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m, err := s.MovieService.Update(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id := c.Param("id")
	if err := s.MovieService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return writeMessage(c, http.StatusOK, fmt.Sprintf("Movie %s deleted successfully", id))
}

// handleMovieOptions answers preflight requests for a single movie.
func (s *Server) handleMovieOptions(c echo.Context) error {
	if origin := c.Request().Header.Get(echo.HeaderOrigin); origin != "" {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, origin)
	}
	c.Response().Header().Set(echo.HeaderAccessControlAllowMethods, preflightMethods)
	return c.NoContent(http.StatusOK)
}
