package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		country TEXT NOT NULL,
		country_code TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		pin_hash TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		role TEXT NOT NULL DEFAULT 'USER',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		balance INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL,
		purpose TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		amount INTEGER NOT NULL,
		narration TEXT,
		status TEXT NOT NULL,
		channel TEXT NOT NULL,
		credit_wallet_id TEXT,
		debit_wallet_id TEXT,
		intent_id TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentIntentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_intents (
		id TEXT PRIMARY KEY,
		credit_wallet_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		narration TEXT,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func seedWallet(t *testing.T, db *gorm.DB, balance int64) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, "INSERT INTO wallets(id,user_id,balance,created_at,updated_at) VALUES (?,?,?,?,?)",
		id.String(), uuid.New().String(), balance, time.Now(), time.Now())
	return id
}
