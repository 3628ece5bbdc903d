package handlers

import (
	"context"
	"net/http"
	"strconv"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/interfaces/http/response"
	"fastqr.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionService interface {
	GeneratePaymentRequest(ctx context.Context, userID uuid.UUID, input *entities.GeneratePaymentInput) (*entities.PaymentRequestOutput, error)
	ProcessPayment(ctx context.Context, userID uuid.UUID, input *entities.ProcessPaymentInput) (*entities.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.TransactionSummary, utils.PaginationMeta, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entities.TransactionDetail, error)
}

// TransactionHandler handles QR payment and history endpoints
type TransactionHandler struct {
	transactionUsecase TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUsecase TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// GeneratePaymentRequest creates a payment QR code for the caller to be paid
// POST /api/v1/transactions/:userId/generate
func (h *TransactionHandler) GeneratePaymentRequest(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.GeneratePaymentInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.transactionUsecase.GeneratePaymentRequest(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment request generated successfully", output)
}

// ProcessPayment pays a scanned QR code from the caller's wallet
// POST /api/v1/transactions/:userId/process
func (h *TransactionHandler) ProcessPayment(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ProcessPaymentInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.transactionUsecase.ProcessPayment(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment processed successfully", tx)
}

// ListTransactions returns the caller's transaction history
// GET /api/v1/transactions/:userId?page=&limit=
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))

	items, meta, err := h.transactionUsecase.ListTransactions(c.Request.Context(), userID, utils.GetPaginationParams(page, limit))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Transactions retrieved successfully", items, meta)
}

// GetTransaction returns one of the caller's transactions
// GET /api/v1/transactions/:userId/:transactionId
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := ownerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Transaction not found"))
		return
	}

	detail, err := h.transactionUsecase.GetTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Transaction retrieved successfully", detail)
}
