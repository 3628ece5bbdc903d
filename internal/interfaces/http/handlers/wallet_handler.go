package handlers

import (
	"context"
	"net/http"

	"fastqr.backend/internal/domain/entities"
	"fastqr.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletService interface {
	CreatePin(ctx context.Context, userID uuid.UUID, input *entities.CreatePinInput) error
	UpdatePin(ctx context.Context, userID uuid.UUID, input *entities.UpdatePinInput) error
	GetWallet(ctx context.Context, userID uuid.UUID) (*entities.WalletResponse, error)
}

// WalletHandler handles wallet endpoints
type WalletHandler struct {
	walletUsecase WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase WalletService) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// CreatePin sets the transaction PIN
// POST /api/v1/wallet/:userId
func (h *WalletHandler) CreatePin(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreatePinInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.walletUsecase.CreatePin(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Transaction pin created successfully", nil)
}

// UpdatePin replaces the transaction PIN
// PATCH /api/v1/wallet/:userId
func (h *WalletHandler) UpdatePin(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdatePinInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.walletUsecase.UpdatePin(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Transaction pin updated successfully", nil)
}

// GetWallet returns the caller's wallet
// GET /api/v1/wallet/:userId
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	wallet, err := h.walletUsecase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Wallet retrieved successfully", wallet)
}
