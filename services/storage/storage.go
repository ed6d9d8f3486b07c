package storage

import (
	"errors"
	"time"

	passModel "port-pass/models/pass"
	staffModel "port-pass/models/staff"
	txModel "port-pass/models/transaction"
	passTypes "port-pass/types/pass"
	staffTypes "port-pass/types/staff"
	txTypes "port-pass/types/transaction"
)

// Failure taxonomy for store operations. Callers test with errors.Is; the store
// never retries or recovers internally.
var (
	// ErrNotFound means a referenced entity id does not resolve, including a
	// pass referencing a nonexistent transaction.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means a username or pass number collision.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValidationFailure means structurally invalid input reached the store,
	// e.g. a negative amount. Field-level validation happens upstream.
	ErrValidationFailure = errors.New("validation failure")

	// ErrStorageUnavailable means the durable backend failed; the caller should
	// retry with backoff.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Storage owns the canonical Transaction, Pass and Staff records. All
// operations are atomic with respect to concurrent callers; returned values are
// copies, never references into the store's own state.
type Storage interface {
	// Transaction operations
	CreateTransaction(req txTypes.CreateTransactionRequest) (*txModel.Transaction, error)
	GetTransactionByID(id string) (*txModel.Transaction, error)

	// Pass operations
	CreatePass(req passTypes.CreatePassRequest) (*passModel.Pass, error)
	GetPassesByTransaction(transactionID string) ([]passModel.Pass, error)
	GetRecentPasses(limit int) ([]passModel.Pass, error)
	GetPassesByDate(day time.Time) ([]passModel.Pass, error)

	// Staff operations
	CreateStaff(req staffTypes.CreateStaffRequest) (*staffModel.Staff, error)
	GetStaffByID(id string) (*staffModel.Staff, error)
	GetStaffByUsername(username string) (*staffModel.Staff, error)
	GetAllStaff() ([]staffModel.Staff, error)
	UpdateStaff(id string, req staffTypes.UpdateStaffRequest) (*staffModel.Staff, error)
	DeleteStaff(id string) (bool, error)
	CountStaff() (int64, error)
}
