package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilhete-backend/internal/models"
)

func TestPlaceholderOdds(t *testing.T) {
	odds := models.PlaceholderOdds()
	assert.Equal(t, "1.85", odds.Home)
	assert.Equal(t, "3.40", odds.Draw)
	assert.Equal(t, "4.20", odds.Away)
}

func TestRegisterRequest_AbsentFieldsStayNil(t *testing.T) {
	var req models.RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"Ana"}`), &req))

	require.NotNil(t, req.Nome)
	assert.Equal(t, "Ana", *req.Nome)
	assert.Nil(t, req.Email)
	assert.Nil(t, req.Senha)
}

func TestUser_DigestIsNeverSerialized(t *testing.T) {
	name, email, digest := "Ana", "ana@x.com", "abc"
	raw, err := json.Marshal(models.User{ID: 1, Name: &name, Email: &email, PasswordDigest: &digest})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc")
}

func TestTicketStatus(t *testing.T) {
	assert.False(t, models.TicketStatusPending.IsFinal())
	assert.True(t, models.TicketStatusWon.IsFinal())
	assert.True(t, models.TicketStatusLost.IsFinal())
	assert.True(t, models.TicketStatusVoid.IsFinal())
}
