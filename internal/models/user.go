package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             int64           `json:"id" db:"id"`
	Name           *string         `json:"nome" db:"name"`
	Email          *string         `json:"email" db:"email"`
	PasswordDigest *string         `json:"-" db:"password_digest"`
	Balance        decimal.Decimal `json:"saldo" db:"balance"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// RegisterRequest is the body of POST /api/cadastro. Fields are pointers so
// that an absent field reaches the store as NULL instead of "".
type RegisterRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
}

type RegisteredUser struct {
	ID   int64   `json:"id"`
	Nome *string `json:"nome"`
}

type RegisterResponse struct {
	Sucesso bool           `json:"sucesso"`
	Usuario RegisteredUser `json:"usuario"`
}

type ErrorResponse struct {
	Erro string `json:"erro"`
}
