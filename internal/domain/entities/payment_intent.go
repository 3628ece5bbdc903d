package entities

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentIntentStatus represents the status of a generated payment request
type PaymentIntentStatus string

const (
	PaymentIntentStatusPending   PaymentIntentStatus = "PENDING"
	PaymentIntentStatusCompleted PaymentIntentStatus = "COMPLETED"
	PaymentIntentStatusExpired   PaymentIntentStatus = "EXPIRED"
	PaymentIntentStatusCancelled PaymentIntentStatus = "CANCELLED"
)

// ErrMalformedPayload is returned for payloads that are not base64 encoded JSON
var ErrMalformedPayload = errors.New("malformed payment payload")

// PaymentIntent is a persisted, single-use request to pay CreditWalletID
type PaymentIntent struct {
	ID             uuid.UUID           `json:"id"`
	CreditWalletID uuid.UUID           `json:"creditWalletId"`
	Amount         int64               `json:"amount"`
	Narration      string              `json:"narration"`
	Status         PaymentIntentStatus `json:"status"`
	ExpiresAt      time.Time           `json:"expiresAt"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// PaymentPayload is the JSON document carried inside the QR code
type PaymentPayload struct {
	Amount         int64  `json:"amount"`
	Narration      string `json:"narration"`
	CreditWalletID string `json:"creditWalletId"`
	Reference      string `json:"reference,omitempty"`
}

// Encode serializes the payload to JSON and base64 encodes it
func (p PaymentPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodePaymentPayload reverses Encode. Padded, unpadded and URL-safe alphabets are all accepted.
func DecodePaymentPayload(encoded string) (*PaymentPayload, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrMalformedPayload
	}

	var raw []byte
	var err error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if raw, err = enc.DecodeString(encoded); err == nil {
			break
		}
	}
	if err != nil {
		return nil, ErrMalformedPayload
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var p PaymentPayload
	if err := dec.Decode(&p); err != nil {
		return nil, ErrMalformedPayload
	}
	return &p, nil
}

// GeneratePaymentInput represents input for generating a payment QR
type GeneratePaymentInput struct {
	Amount    int64  `json:"amount"`
	Narration string `json:"narration"`
}

// ProcessPaymentInput represents input for redeeming a payment QR
type ProcessPaymentInput struct {
	Base64String string      `json:"base64String"`
	Pin          NumericCode `json:"pin"`
}

// PaymentRequestOutput is returned by the generate operation
type PaymentRequestOutput struct {
	QRCode       string    `json:"qrCode"`
	Base64String string    `json:"base64String"`
	Reference    uuid.UUID `json:"reference"`
	Amount       int64     `json:"amount"`
	Narration    string    `json:"narration"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
