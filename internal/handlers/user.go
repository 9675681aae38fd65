package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"bilhete-backend/internal/models"
)

const msgEmailExists = "E-mail já existe."

type Registrar interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

type UserHandler struct {
	users Registrar
}

func NewUserHandler(users Registrar) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /api/cadastro. Every failure, including a body that
// does not parse, gets the same 400 payload.
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Debug("Unreadable registration body")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Erro: msgEmailExists})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Erro: msgEmailExists})
		return
	}

	c.JSON(http.StatusOK, models.RegisterResponse{
		Sucesso: true,
		Usuario: models.RegisteredUser{
			ID:   user.ID,
			Nome: user.Name,
		},
	})
}
