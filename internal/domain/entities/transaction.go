package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the ledger row status
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// TransactionChannel tells how a transaction was initiated
type TransactionChannel string

const (
	TransactionChannelQRCode TransactionChannel = "QRCODE"
	TransactionChannelOther  TransactionChannel = "OTHER"
)

// TransactionType is the direction of a transaction relative to one wallet
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction is a ledger row referencing up to two wallets
type Transaction struct {
	ID             uuid.UUID          `json:"id"`
	Amount         int64              `json:"amount"`
	Narration      string             `json:"narration"`
	Status         TransactionStatus  `json:"status"`
	Channel        TransactionChannel `json:"channel"`
	CreditWalletID *uuid.UUID         `json:"creditWalletId,omitempty"`
	DebitWalletID  *uuid.UUID         `json:"debitWalletId,omitempty"`
	IntentID       *uuid.UUID         `json:"intentId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// TypeFor labels the transaction credit when walletID is the credited side, debit otherwise
func (t *Transaction) TypeFor(walletID uuid.UUID) TransactionType {
	if t.CreditWalletID != nil && *t.CreditWalletID == walletID {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}

// Involves reports whether walletID is on either side
func (t *Transaction) Involves(walletID uuid.UUID) bool {
	return (t.CreditWalletID != nil && *t.CreditWalletID == walletID) ||
		(t.DebitWalletID != nil && *t.DebitWalletID == walletID)
}

// TransactionSummary is one history entry
type TransactionSummary struct {
	ID        uuid.UUID         `json:"id"`
	Type      TransactionType   `json:"type"`
	Amount    int64             `json:"amount"`
	Narration string            `json:"narration"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// TransactionDetail is a single transaction with current wallet balances resolved
type TransactionDetail struct {
	ID           uuid.UUID         `json:"id"`
	Amount       int64             `json:"amount"`
	Status       TransactionStatus `json:"status"`
	Narration    string            `json:"narration"`
	Type         TransactionType   `json:"type"`
	CreditWallet *WalletSnapshot   `json:"creditWallet,omitempty"`
	DebitWallet  *WalletSnapshot   `json:"debitWallet,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
