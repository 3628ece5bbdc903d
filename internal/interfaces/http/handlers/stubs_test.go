package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastqr.backend/internal/domain/entities"
	"fastqr.backend/internal/interfaces/http/middleware"
	"fastqr.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type authServiceStub struct {
	registerFn func(ctx context.Context, input *entities.RegisterInput) (*entities.UserResponse, error)
	loginFn    func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	logoutFn   func(ctx context.Context, token string)
	verifyFn   func(ctx context.Context, input *entities.VerifyAccountInput) (*entities.UserResponse, error)
	resendFn   func(ctx context.Context, input *entities.EmailInput) error
	resetFn    func(ctx context.Context, input *entities.EmailInput) error
	updateFn   func(ctx context.Context, input *entities.UpdatePasswordInput) error
}

func (s authServiceStub) Register(ctx context.Context, input *entities.RegisterInput) (*entities.UserResponse, error) {
	return s.registerFn(ctx, input)
}
func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) Logout(ctx context.Context, token string) {
	if s.logoutFn != nil {
		s.logoutFn(ctx, token)
	}
}
func (s authServiceStub) VerifyAccount(ctx context.Context, input *entities.VerifyAccountInput) (*entities.UserResponse, error) {
	return s.verifyFn(ctx, input)
}
func (s authServiceStub) ResendVerification(ctx context.Context, input *entities.EmailInput) error {
	return s.resendFn(ctx, input)
}
func (s authServiceStub) ResetPassword(ctx context.Context, input *entities.EmailInput) error {
	return s.resetFn(ctx, input)
}
func (s authServiceStub) UpdatePassword(ctx context.Context, input *entities.UpdatePasswordInput) error {
	return s.updateFn(ctx, input)
}

type walletServiceStub struct {
	createPinFn func(ctx context.Context, userID uuid.UUID, input *entities.CreatePinInput) error
	updatePinFn func(ctx context.Context, userID uuid.UUID, input *entities.UpdatePinInput) error
	getFn       func(ctx context.Context, userID uuid.UUID) (*entities.WalletResponse, error)
}

func (s walletServiceStub) CreatePin(ctx context.Context, userID uuid.UUID, input *entities.CreatePinInput) error {
	return s.createPinFn(ctx, userID, input)
}
func (s walletServiceStub) UpdatePin(ctx context.Context, userID uuid.UUID, input *entities.UpdatePinInput) error {
	return s.updatePinFn(ctx, userID, input)
}
func (s walletServiceStub) GetWallet(ctx context.Context, userID uuid.UUID) (*entities.WalletResponse, error) {
	return s.getFn(ctx, userID)
}

type transactionServiceStub struct {
	generateFn func(ctx context.Context, userID uuid.UUID, input *entities.GeneratePaymentInput) (*entities.PaymentRequestOutput, error)
	processFn  func(ctx context.Context, userID uuid.UUID, input *entities.ProcessPaymentInput) (*entities.Transaction, error)
	listFn     func(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.TransactionSummary, utils.PaginationMeta, error)
	getFn      func(ctx context.Context, userID, transactionID uuid.UUID) (*entities.TransactionDetail, error)
}

func (s transactionServiceStub) GeneratePaymentRequest(ctx context.Context, userID uuid.UUID, input *entities.GeneratePaymentInput) (*entities.PaymentRequestOutput, error) {
	return s.generateFn(ctx, userID, input)
}
func (s transactionServiceStub) ProcessPayment(ctx context.Context, userID uuid.UUID, input *entities.ProcessPaymentInput) (*entities.Transaction, error) {
	return s.processFn(ctx, userID, input)
}
func (s transactionServiceStub) ListTransactions(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.TransactionSummary, utils.PaginationMeta, error) {
	return s.listFn(ctx, userID, pagination)
}
func (s transactionServiceStub) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entities.TransactionDetail, error) {
	return s.getFn(ctx, userID, transactionID)
}

// asUser stands in for the auth middleware
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func newRequestWithCookie(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	return req
}

func serveRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
