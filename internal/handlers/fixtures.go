package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bilhete-backend/internal/models"
	"bilhete-backend/internal/services"
)

type FixtureLister interface {
	ListUpcoming(ctx context.Context) services.FixtureResult
}

type FixtureHandler struct {
	fixtures FixtureLister
}

func NewFixtureHandler(fixtures FixtureLister) *FixtureHandler {
	return &FixtureHandler{fixtures: fixtures}
}

// ListUpcoming always answers 200 with an array; provider failures show up
// as an empty list.
func (h *FixtureHandler) ListUpcoming(c *gin.Context) {
	result := h.fixtures.ListUpcoming(c.Request.Context())
	if result.Fixtures == nil {
		result.Fixtures = []models.FixtureView{}
	}
	c.JSON(http.StatusOK, result.Fixtures)
}
