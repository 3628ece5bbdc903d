package entities

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the per-user balance record, in minor units
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePinInput represents input for setting the first transaction PIN
type CreatePinInput struct {
	Pin NumericCode `json:"pin"`
}

// UpdatePinInput represents input for rotating the transaction PIN
type UpdatePinInput struct {
	CurrentPin NumericCode `json:"currentPin"`
	Pin        NumericCode `json:"pin"`
}

// WalletResponse is the wallet view returned to its owner
type WalletResponse struct {
	WalletID uuid.UUID `json:"walletId"`
	Balance  int64     `json:"balance"`
	HasPin   bool      `json:"hasPin"`
}

// WalletSnapshot is a wallet id with its current balance
type WalletSnapshot struct {
	ID      uuid.UUID `json:"id"`
	Balance int64     `json:"balance"`
}
