package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	passModel "port-pass/models/pass"
	staffModel "port-pass/models/staff"
	txModel "port-pass/models/transaction"
	"port-pass/services/credential"
	passTypes "port-pass/types/pass"
	staffTypes "port-pass/types/staff"
	txTypes "port-pass/types/transaction"
	"port-pass/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

// MemoryStorage keeps all records in process memory behind a single RWMutex.
// Maps alone would lose externally observed ordering, so each collection also
// carries an explicit insertion-order index.
//
// Password hashing is deliberately slow and always happens before the lock is
// taken, so unrelated operations are not blocked behind bcrypt.
type MemoryStorage struct {
	mu          sync.RWMutex
	credentials *credential.Service

	transactions map[string]*txModel.Transaction
	txOrder      []string

	passes    map[string]*passModel.Pass
	passOrder []string

	staff      map[string]*staffModel.Staff
	staffOrder []string
}

func NewMemoryStorage(credentials *credential.Service) *MemoryStorage {
	return &MemoryStorage{
		credentials:  credentials,
		transactions: make(map[string]*txModel.Transaction),
		passes:       make(map[string]*passModel.Pass),
		staff:        make(map[string]*staffModel.Staff),
	}
}

// Transaction operations

func (m *MemoryStorage) CreateTransaction(req txTypes.CreateTransactionRequest) (*txModel.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	cents, err := utils.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	if cents < 0 {
		return nil, fmt.Errorf("%w: totalAmount cannot be negative", ErrValidationFailure)
	}

	tx := &txModel.Transaction{
		ID:               uuid.NewString(),
		PayerName:        req.PayerName,
		PayerEmail:       copyStringPtr(req.PayerEmail),
		PayerPhone:       copyStringPtr(req.PayerPhone),
		TotalAmountCents: cents,
		SlipFilename:     req.SlipFilename,
		CreatedAt:        time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	m.txOrder = append(m.txOrder, tx.ID)

	return cloneTransaction(tx), nil
}

func (m *MemoryStorage) GetTransactionByID(id string) (*txModel.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return cloneTransaction(tx), nil
}

// Pass operations

func (m *MemoryStorage) CreatePass(req passTypes.CreatePassRequest) (*passModel.Pass, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	cents, err := utils.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	if cents < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrValidationFailure)
	}

	p := &passModel.Pass{
		ID:            uuid.NewString(),
		TransactionID: req.TransactionID,
		StaffID:       req.StaffID,
		CustomerName:  req.CustomerName,
		PassType:      passModel.PassType(req.PassType),
		IDNumber:      copyStringPtr(req.IDNumber),
		PlateNumber:   copyStringPtr(req.PlateNumber),
		ValidDate:     req.ValidDate,
		PassNumber:    req.PassNumber,
		AmountCents:   cents,
		QRCode:        req.QRCode,
		CreatedAt:     time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[req.TransactionID]; !ok {
		return nil, fmt.Errorf("transaction %s: %w", req.TransactionID, ErrNotFound)
	}
	for _, existing := range m.passes {
		if existing.PassNumber == req.PassNumber {
			return nil, fmt.Errorf("passNumber %s: %w", req.PassNumber, ErrDuplicateKey)
		}
	}

	m.passes[p.ID] = p
	m.passOrder = append(m.passOrder, p.ID)

	return clonePass(p), nil
}

func (m *MemoryStorage) GetPassesByTransaction(transactionID string) ([]passModel.Pass, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]passModel.Pass, 0)
	for _, id := range m.passOrder {
		if p := m.passes[id]; p.TransactionID == transactionID {
			result = append(result, *clonePass(p))
		}
	}
	return result, nil
}

func (m *MemoryStorage) GetRecentPasses(limit int) ([]passModel.Pass, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Walk the insertion index newest-first so the stable sort breaks createdAt
	// ties in favor of the most recently inserted pass.
	result := make([]passModel.Pass, 0, len(m.passOrder))
	for i := len(m.passOrder) - 1; i >= 0; i-- {
		result = append(result, *clonePass(m.passes[m.passOrder[i]]))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (m *MemoryStorage) GetPassesByDate(day time.Time) ([]passModel.Pass, error) {
	start := now.With(day).BeginningOfDay()
	end := now.With(day).EndOfDay()

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]passModel.Pass, 0)
	for _, id := range m.passOrder {
		p := m.passes[id]
		if !p.CreatedAt.Before(start) && !p.CreatedAt.After(end) {
			result = append(result, *clonePass(p))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].PassNumber < result[j].PassNumber
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Staff operations

func (m *MemoryStorage) CreateStaff(req staffTypes.CreateStaffRequest) (*staffModel.Staff, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	// bcrypt is the expensive part; do it before touching the lock.
	hashed, err := m.credentials.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	nowTime := time.Now()
	s := &staffModel.Staff{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Designation:  req.Designation,
		Department:   req.Department,
		IsAdmin:      req.IsAdmin,
		IsActive:     isActive,
		CreatedAt:    nowTime,
		UpdatedAt:    nowTime,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.staff {
		if existing.Username == req.Username {
			return nil, fmt.Errorf("username %s: %w", req.Username, ErrDuplicateKey)
		}
	}

	m.staff[s.ID] = s
	m.staffOrder = append(m.staffOrder, s.ID)

	out := *s
	return &out, nil
}

func (m *MemoryStorage) GetStaffByID(id string) (*staffModel.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff %s: %w", id, ErrNotFound)
	}
	out := *s
	return &out, nil
}

func (m *MemoryStorage) GetStaffByUsername(username string) (*staffModel.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.staffOrder {
		if s := m.staff[id]; s.Username == username {
			out := *s
			return &out, nil
		}
	}
	return nil, fmt.Errorf("staff %s: %w", username, ErrNotFound)
}

func (m *MemoryStorage) GetAllStaff() ([]staffModel.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]staffModel.Staff, 0, len(m.staffOrder))
	for _, id := range m.staffOrder {
		result = append(result, *m.staff[id])
	}
	return result, nil
}

func (m *MemoryStorage) UpdateStaff(id string, req staffTypes.UpdateStaffRequest) (*staffModel.Staff, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	// Hash outside the lock; wasted work if the id turns out not to exist, but
	// concurrent operations never wait on bcrypt.
	var hashed string
	if req.Password != nil {
		h, err := m.credentials.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
		}
		hashed = h
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff %s: %w", id, ErrNotFound)
	}

	if req.Username != nil && *req.Username != s.Username {
		for _, existing := range m.staff {
			if existing.Username == *req.Username {
				return nil, fmt.Errorf("username %s: %w", *req.Username, ErrDuplicateKey)
			}
		}
		s.Username = *req.Username
	}
	if req.Password != nil {
		s.PasswordHash = hashed
	}
	if req.FullName != nil {
		s.FullName = *req.FullName
	}
	if req.Designation != nil {
		s.Designation = *req.Designation
	}
	if req.Department != nil {
		s.Department = *req.Department
	}
	if req.IsAdmin != nil {
		s.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	// updatedAt never regresses, even across clock adjustments.
	updated := time.Now()
	if updated.Before(s.UpdatedAt) {
		updated = s.UpdatedAt
	}
	s.UpdatedAt = updated

	out := *s
	return &out, nil
}

func (m *MemoryStorage) DeleteStaff(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.staff[id]; !ok {
		return false, nil
	}
	delete(m.staff, id)
	for i, orderedID := range m.staffOrder {
		if orderedID == id {
			m.staffOrder = append(m.staffOrder[:i], m.staffOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *MemoryStorage) CountStaff() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.staff)), nil
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// cloneTransaction and clonePass deep-copy pointer fields so callers never
// hold references into canonical store state.
func cloneTransaction(tx *txModel.Transaction) *txModel.Transaction {
	out := *tx
	out.PayerEmail = copyStringPtr(tx.PayerEmail)
	out.PayerPhone = copyStringPtr(tx.PayerPhone)
	return &out
}

func clonePass(p *passModel.Pass) *passModel.Pass {
	out := *p
	out.IDNumber = copyStringPtr(p.IDNumber)
	out.PlateNumber = copyStringPtr(p.PlateNumber)
	return &out
}
