package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"movie_rental_api/app"
	"movie_rental_api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MovieController struct{ *Srv }

func NewMovieController(s *Srv) *MovieController { return &MovieController{Srv: s} }

type movieReq struct {
	Title       string   `json:"title" binding:"required"`
	ReleaseYear int      `json:"release_year" binding:"required"`
	RuntimeMin  int16    `json:"runtime_min" binding:"required"`
	Rating      *float64 `json:"rating"`
	Summary     *string  `json:"summary"`
}

func (mc *MovieController) CreateMovie(c *gin.Context) {
	var in movieReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	m := &models.Movie{
		Title:       in.Title,
		ReleaseYear: in.ReleaseYear,
		RuntimeMin:  in.RuntimeMin,
		Rating:      in.Rating,
		Summary:     in.Summary,
	}
	if err := mc.Repo.CreateMovie(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (mc *MovieController) GetMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad movie id"})
		return
	}
	m, err := mc.Repo.FindMovieByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// ?q=&page=&size=
func (mc *MovieController) ListMovies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	res, err := mc.Repo.ListMovies(c.Request.Context(), c.Query("q"), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (mc *MovieController) UpdateMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad movie id"})
		return
	}
	m, err := mc.Repo.FindMovieByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	var in movieReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	m.Title = in.Title
	m.ReleaseYear = in.ReleaseYear
	m.RuntimeMin = in.RuntimeMin
	m.Rating = in.Rating
	m.Summary = in.Summary
	if err := mc.Repo.UpdateMovie(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MovieController) DeleteMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "bad movie id"})
		return
	}
	if err := mc.Repo.DeleteMovie(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// 查表类只读接口

func (mc *MovieController) ListGenres(c *gin.Context) {
	gs, err := mc.Repo.ListGenres(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"genres": gs})
}

func (mc *MovieController) ListFormats(c *gin.Context) {
	fs, err := mc.Repo.ListFormats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"formats": fs})
}

func (mc *MovieController) ListLocations(c *gin.Context) {
	ls, err := mc.Repo.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"locations": ls})
}

func (mc *MovieController) CreateLocation(c *gin.Context) {
	var in struct {
		Address string `json:"address" binding:"required"`
		City    string `json:"city" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	l := &models.Location{Address: in.Address, City: in.City}
	if err := mc.Repo.CreateLocation(c.Request.Context(), l); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, l)
}
