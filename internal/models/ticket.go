package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusPending TicketStatus = "pending"
	TicketStatusWon     TicketStatus = "won"
	TicketStatusLost    TicketStatus = "lost"
	TicketStatusVoid    TicketStatus = "void"
)

// Ticket mirrors the tickets table. Nothing reads or writes tickets yet.
type Ticket struct {
	ID              int64           `json:"id" db:"id"`
	UserID          int64           `json:"user_id" db:"user_id"`
	Code            string          `json:"code" db:"code"`
	Stake           decimal.Decimal `json:"stake" db:"stake"`
	PotentialReturn decimal.Decimal `json:"potential_return" db:"potential_return"`
	Details         json.RawMessage `json:"details" db:"details"`
	Status          TicketStatus    `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

func (s TicketStatus) IsFinal() bool {
	switch s {
	case TicketStatusWon, TicketStatusLost, TicketStatusVoid:
		return true
	default:
		return false
	}
}
