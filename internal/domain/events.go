package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent is published after a successful checkout.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	Total     decimal.Decimal `json:"total"`
	BonusUsed decimal.Decimal `json:"bonus_used"`
	Tip       decimal.Decimal `json:"tip"`
	PlacedAt  time.Time       `json:"placed_at"`
}

const EventOrderPlaced = "order_placed"
