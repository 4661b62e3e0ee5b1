package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/service"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"

	"github.com/gin-gonic/gin"
)

// RoundHandler groups the round-generation and reveal HTTP handlers.
type RoundHandler struct {
	repo storage.Repository
	gen  service.Generator
}

// NewRoundHandler creates a RoundHandler backed by the given repository
// and generator.
func NewRoundHandler(repo storage.Repository, gen service.Generator) *RoundHandler {
	return &RoundHandler{repo: repo, gen: gen}
}

type createRoundRequest struct {
	Theme string `json:"theme"`
}

type revealRequest struct {
	RoundID string `json:"roundId"`
	// Pointer so a missing guess is distinguishable from 0.
	Guess *int `json:"guess"`
}

// CreateRound generates a new round for the posted theme.
func (h *RoundHandler) CreateRound(c *gin.Context) {
	var req createRoundRequest
	// A missing or malformed body degrades to an empty theme, which the
	// service rejects with a clear message.
	_ = c.ShouldBindJSON(&req)

	info, err := service.CreateRound(c.Request.Context(), h.repo, h.gen, req.Theme)
	if err != nil {
		if errors.Is(err, service.ErrThemeRequired) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrThemeRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			constants.JSONKeyError:   constants.ErrGenerationFailed,
			constants.JSONKeyDetails: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, info)
}

// Reveal scores the posted guess against the round's hidden target and
// consumes the round.
func (h *RoundHandler) Reveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGuessNotInteger})
		return
	}
	if req.RoundID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownOrExpiredRound})
		return
	}
	if req.Guess == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGuessRequired})
		return
	}

	outcome, err := service.RevealRound(h.repo, req.RoundID, *req.Guess, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuessOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrGuessOutOfRange})
		case errors.Is(err, service.ErrRoundNotFound):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownOrExpiredRound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		}
		return
	}
	c.JSON(http.StatusOK, outcome)
}
