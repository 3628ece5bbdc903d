package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"fastqr.backend/internal/domain/repositories"
	"fastqr.backend/pkg/crypto"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/metrics"
	"fastqr.backend/pkg/qrcode"
	"fastqr.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPaymentIntentTTL is used when no intent lifetime is configured
const DefaultPaymentIntentTTL = 15 * time.Minute

var encodeQRCode = qrcode.EncodeDataURI

// TransactionUsecase handles QR payment requests, settlement and history
type TransactionUsecase struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	txRepo     repositories.TransactionRepository
	intentRepo repositories.PaymentIntentRepository
	uow        repositories.UnitOfWork
	intentTTL  time.Duration
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	txRepo repositories.TransactionRepository,
	intentRepo repositories.PaymentIntentRepository,
	uow repositories.UnitOfWork,
	intentTTL time.Duration,
) *TransactionUsecase {
	if intentTTL <= 0 {
		intentTTL = DefaultPaymentIntentTTL
	}
	return &TransactionUsecase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		intentRepo: intentRepo,
		uow:        uow,
		intentTTL:  intentTTL,
	}
}

// GeneratePaymentRequest persists a pending intent to pay the caller and renders it as a QR code
func (u *TransactionUsecase) GeneratePaymentRequest(ctx context.Context, userID uuid.UUID, input *entities.GeneratePaymentInput) (*entities.PaymentRequestOutput, error) {
	narration := strings.TrimSpace(input.Narration)
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("Amount must be a positive integer")
	}
	if narration == "" {
		return nil, missingField("Narration")
	}

	wallet, err := u.getWalletByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	intent := &entities.PaymentIntent{
		ID:             utils.GenerateUUIDv7(),
		CreditWalletID: wallet.ID,
		Amount:         input.Amount,
		Narration:      narration,
		Status:         entities.PaymentIntentStatusPending,
		ExpiresAt:      timeNow().Add(u.intentTTL),
	}

	encoded, err := entities.PaymentPayload{
		Amount:         intent.Amount,
		Narration:      intent.Narration,
		CreditWalletID: intent.CreditWalletID.String(),
		Reference:      intent.ID.String(),
	}.Encode()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	qr, err := encodeQRCode(encoded, qrcode.DefaultSize)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	if err := u.intentRepo.Create(ctx, intent); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.PaymentRequestOutput{
		QRCode:       qr,
		Base64String: encoded,
		Reference:    intent.ID,
		Amount:       intent.Amount,
		Narration:    intent.Narration,
		ExpiresAt:    intent.ExpiresAt,
	}, nil
}

// ProcessPayment redeems a payment QR: the caller's wallet is debited and the payee credited, all or nothing
func (u *TransactionUsecase) ProcessPayment(ctx context.Context, userID uuid.UUID, input *entities.ProcessPaymentInput) (*entities.Transaction, error) {
	tx, err := u.processPayment(ctx, userID, input)
	switch {
	case err == nil:
		metrics.SettlementsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	case domainerrors.KindOf(err) == domainerrors.KindInternal:
		metrics.SettlementsTotal.WithLabelValues(metrics.ResultError).Inc()
	default:
		metrics.SettlementsTotal.WithLabelValues(metrics.ResultRejected).Inc()
	}
	return tx, err
}

func (u *TransactionUsecase) processPayment(ctx context.Context, userID uuid.UUID, input *entities.ProcessPaymentInput) (*entities.Transaction, error) {
	if strings.TrimSpace(input.Base64String) == "" {
		return nil, missingField("base64String")
	}
	payload, err := entities.DecodePaymentPayload(input.Base64String)
	if err != nil {
		return nil, invalidPayload()
	}
	if payload.Amount <= 0 {
		return nil, domainerrors.BadRequest("Amount must be a positive integer")
	}
	creditWalletID, ok := utils.ParseUUID(payload.CreditWalletID)
	if !ok {
		return nil, invalidPayload()
	}
	reference, ok := utils.ParseUUID(payload.Reference)
	if !ok {
		return nil, invalidPayload()
	}

	payer, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if payer.HasPin() && !crypto.CheckPassword(strings.TrimSpace(input.Pin.String()), payer.PinHash.String) {
		return nil, domainerrors.InvalidCredentials()
	}

	payerWallet, err := u.getWalletByUser(ctx, payer.ID)
	if err != nil {
		return nil, err
	}

	record := &entities.Transaction{
		ID:        utils.GenerateUUIDv7(),
		Amount:    payload.Amount,
		Narration: payload.Narration,
		Status:    entities.TransactionStatusCompleted,
		Channel:   entities.TransactionChannelQRCode,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		intent, err := u.intentRepo.GetByID(txCtx, reference)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Payment request not found")
			}
			return err
		}
		if intent.Amount != payload.Amount || intent.CreditWalletID != creditWalletID {
			return invalidPayload()
		}
		if intent.CreditWalletID == payerWallet.ID {
			return domainerrors.BadRequest("Cannot pay yourself")
		}

		if err := u.intentRepo.Consume(txCtx, intent.ID); err != nil {
			if errors.Is(err, domainerrors.ErrIntentUnavailable) {
				return domainerrors.BadRequest("Payment request already processed or expired")
			}
			return err
		}
		if err := u.walletRepo.Debit(txCtx, payerWallet.ID, intent.Amount); err != nil {
			if errors.Is(err, domainerrors.ErrInsufficientFunds) {
				return domainerrors.BadRequest("Insufficient balance")
			}
			return err
		}
		if err := u.walletRepo.Credit(txCtx, intent.CreditWalletID, intent.Amount); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Wallet not found")
			}
			return err
		}

		debitID, creditID, intentID := payerWallet.ID, intent.CreditWalletID, intent.ID
		record.Narration = intent.Narration
		record.DebitWalletID = &debitID
		record.CreditWalletID = &creditID
		record.IntentID = &intentID
		return u.txRepo.Create(txCtx, record)
	})
	if err != nil {
		appErr := domainerrors.Wrap(err)
		if appErr.Kind == domainerrors.KindInternal {
			logger.Error(ctx, "Payment settlement failed", zap.String("reference", reference.String()), zap.Error(err))
		}
		return nil, appErr
	}

	logger.Info(ctx, "Payment settled",
		zap.String("transaction_id", record.ID.String()),
		zap.String("reference", reference.String()),
		zap.Int64("amount", record.Amount),
	)
	return record, nil
}

// ListTransactions returns the caller's history newest first, typed relative to their wallet
func (u *TransactionUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.TransactionSummary, utils.PaginationMeta, error) {
	pagination = utils.GetPaginationParams(pagination.Page, pagination.Limit)

	wallet, err := u.getWalletByUser(ctx, userID)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	txs, total, err := u.txRepo.ListByWallet(ctx, wallet.ID, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}

	items := make([]*entities.TransactionSummary, 0, len(txs))
	for _, tx := range txs {
		items = append(items, &entities.TransactionSummary{
			ID:        tx.ID,
			Type:      tx.TypeFor(wallet.ID),
			Amount:    tx.Amount,
			Narration: tx.Narration,
			Status:    tx.Status,
			CreatedAt: tx.CreatedAt,
			UpdatedAt: tx.UpdatedAt,
		})
	}
	return items, utils.CalculateMeta(int64(total), pagination.Page, pagination.Limit), nil
}

// GetTransaction returns one of the caller's transactions with both wallet balances
func (u *TransactionUsecase) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entities.TransactionDetail, error) {
	wallet, err := u.getWalletByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := u.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Transaction not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if !tx.Involves(wallet.ID) {
		return nil, domainerrors.NotFound("Transaction not found")
	}

	detail := &entities.TransactionDetail{
		ID:        tx.ID,
		Amount:    tx.Amount,
		Status:    tx.Status,
		Narration: tx.Narration,
		Type:      tx.TypeFor(wallet.ID),
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
	if detail.CreditWallet, err = u.snapshot(ctx, tx.CreditWalletID); err != nil {
		return nil, err
	}
	if detail.DebitWallet, err = u.snapshot(ctx, tx.DebitWalletID); err != nil {
		return nil, err
	}
	return detail, nil
}

// snapshot resolves a wallet side; a missing or deleted wallet yields nil
func (u *TransactionUsecase) snapshot(ctx context.Context, walletID *uuid.UUID) (*entities.WalletSnapshot, error) {
	if walletID == nil {
		return nil, nil
	}
	w, err := u.walletRepo.GetByID(ctx, *walletID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, domainerrors.InternalError(err)
	}
	return &entities.WalletSnapshot{ID: w.ID, Balance: w.Balance}, nil
}

func (u *TransactionUsecase) getWalletByUser(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Wallet not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return wallet, nil
}

func invalidPayload() *domainerrors.AppError {
	return domainerrors.BadRequest("Invalid payment payload")
}
