package storage

import (
	"errors"
	"fmt"
	"time"

	"port-pass/logger"
	passModel "port-pass/models/pass"
	staffModel "port-pass/models/staff"
	txModel "port-pass/models/transaction"
	"port-pass/services/credential"
	"port-pass/types"
	passTypes "port-pass/types/pass"
	staffTypes "port-pass/types/staff"
	txTypes "port-pass/types/transaction"
	"port-pass/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// GormStorage is the Postgres-backed store. Multi-step operations run inside a
// database transaction so partially committed state is never observable, and
// backend failures surface as ErrStorageUnavailable for the caller to retry.
type GormStorage struct {
	db          *gorm.DB
	credentials *credential.Service
	audit       *logger.AsyncLogger // optional; nil disables the audit trail
}

func NewGormStorage(db *gorm.DB, credentials *credential.Service, audit *logger.AsyncLogger) *GormStorage {
	return &GormStorage{db: db, credentials: credentials, audit: audit}
}

// wrapDBError maps driver errors onto the store taxonomy. Duplicate-key
// translation matters when a concurrent insert slips past the pre-check and
// the unique index rejects the row instead.
func wrapDBError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %v: %w", op, err, ErrStorageUnavailable)
}

func (g *GormStorage) logAudit(actor, action, entity, entityID, detail string) {
	if g.audit == nil {
		return
	}
	g.audit.Log(types.AuditEntry{
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
}

// Transaction operations

func (g *GormStorage) CreateTransaction(req txTypes.CreateTransactionRequest) (*txModel.Transaction, error) {
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

	tx := txModel.Transaction{
		ID:               uuid.NewString(),
		PayerName:        req.PayerName,
		PayerEmail:       req.PayerEmail,
		PayerPhone:       req.PayerPhone,
		TotalAmountCents: cents,
		SlipFilename:     req.SlipFilename,
	}
	if err := g.db.Create(&tx).Error; err != nil {
		return nil, wrapDBError("create transaction", err)
	}

	g.logAudit("", "create", "transaction", tx.ID, "payment recorded for "+tx.PayerName)
	return &tx, nil
}

func (g *GormStorage) GetTransactionByID(id string) (*txModel.Transaction, error) {
	var tx txModel.Transaction
	if err := g.db.Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, wrapDBError("get transaction", err)
	}
	return &tx, nil
}

// Pass operations

func (g *GormStorage) CreatePass(req passTypes.CreatePassRequest) (*passModel.Pass, error) {
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

	p := passModel.Pass{
		ID:            uuid.NewString(),
		TransactionID: req.TransactionID,
		StaffID:       req.StaffID,
		CustomerName:  req.CustomerName,
		PassType:      passModel.PassType(req.PassType),
		IDNumber:      req.IDNumber,
		PlateNumber:   req.PlateNumber,
		ValidDate:     req.ValidDate,
		PassNumber:    req.PassNumber,
		AmountCents:   cents,
		QRCode:        req.QRCode,
	}

	err = g.db.Transaction(func(tx *gorm.DB) error {
		var covering txModel.Transaction
		if err := tx.Where("id = ?", req.TransactionID).First(&covering).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("transaction %s: %w", req.TransactionID, ErrNotFound)
			}
			return wrapDBError("resolve transaction", err)
		}

		var collisions int64
		if err := tx.Model(&passModel.Pass{}).Where("pass_number = ?", req.PassNumber).Count(&collisions).Error; err != nil {
			return wrapDBError("check pass number", err)
		}
		if collisions > 0 {
			return fmt.Errorf("passNumber %s: %w", req.PassNumber, ErrDuplicateKey)
		}

		if err := tx.Create(&p).Error; err != nil {
			return wrapDBError("create pass", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.logAudit(req.StaffID, "create", "pass", p.ID, "pass "+p.PassNumber+" issued")
	return &p, nil
}

func (g *GormStorage) GetPassesByTransaction(transactionID string) ([]passModel.Pass, error) {
	var passes []passModel.Pass
	err := g.db.Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&passes).Error
	if err != nil {
		return nil, wrapDBError("get passes by transaction", err)
	}
	return passes, nil
}

func (g *GormStorage) GetRecentPasses(limit int) ([]passModel.Pass, error) {
	if limit < 0 {
		limit = 0
	}
	var passes []passModel.Pass
	err := g.db.Order("created_at DESC").Limit(limit).Find(&passes).Error
	if err != nil {
		return nil, wrapDBError("get recent passes", err)
	}
	return passes, nil
}

func (g *GormStorage) GetPassesByDate(day time.Time) ([]passModel.Pass, error) {
	start := now.With(day).BeginningOfDay()
	end := now.With(day).EndOfDay()

	var passes []passModel.Pass
	err := g.db.Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC, pass_number ASC").
		Find(&passes).Error
	if err != nil {
		return nil, wrapDBError("get passes by date", err)
	}
	return passes, nil
}

// Staff operations

func (g *GormStorage) CreateStaff(req staffTypes.CreateStaffRequest) (*staffModel.Staff, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	// Hash before opening the transaction so bcrypt latency never holds row
	// locks on the staff table.
	hashed, err := g.credentials.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	s := staffModel.Staff{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Designation:  req.Designation,
		Department:   req.Department,
		IsAdmin:      req.IsAdmin,
		IsActive:     isActive,
	}

	err = g.db.Transaction(func(tx *gorm.DB) error {
		var collisions int64
		if err := tx.Model(&staffModel.Staff{}).Where("username = ?", req.Username).Count(&collisions).Error; err != nil {
			return wrapDBError("check username", err)
		}
		if collisions > 0 {
			return fmt.Errorf("username %s: %w", req.Username, ErrDuplicateKey)
		}
		if err := tx.Create(&s).Error; err != nil {
			return wrapDBError("create staff", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.logAudit(s.Username, "create", "staff", s.ID, "staff account created")
	return &s, nil
}

func (g *GormStorage) GetStaffByID(id string) (*staffModel.Staff, error) {
	var s staffModel.Staff
	if err := g.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, wrapDBError("get staff", err)
	}
	return &s, nil
}

func (g *GormStorage) GetStaffByUsername(username string) (*staffModel.Staff, error) {
	var s staffModel.Staff
	if err := g.db.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, wrapDBError("get staff by username", err)
	}
	return &s, nil
}

func (g *GormStorage) GetAllStaff() ([]staffModel.Staff, error) {
	var all []staffModel.Staff
	if err := g.db.Order("created_at ASC").Find(&all).Error; err != nil {
		return nil, wrapDBError("get all staff", err)
	}
	return all, nil
}

func (g *GormStorage) UpdateStaff(id string, req staffTypes.UpdateStaffRequest) (*staffModel.Staff, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}

	var hashed string
	if req.Password != nil {
		h, err := g.credentials.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
		}
		hashed = h
	}

	var updated staffModel.Staff
	err := g.db.Transaction(func(tx *gorm.DB) error {
		var s staffModel.Staff
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("staff %s: %w", id, ErrNotFound)
			}
			return wrapDBError("load staff", err)
		}

		if req.Username != nil && *req.Username != s.Username {
			var collisions int64
			if err := tx.Model(&staffModel.Staff{}).Where("username = ?", *req.Username).Count(&collisions).Error; err != nil {
				return wrapDBError("check username", err)
			}
			if collisions > 0 {
				return fmt.Errorf("username %s: %w", *req.Username, ErrDuplicateKey)
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

		if err := tx.Save(&s).Error; err != nil {
			return wrapDBError("update staff", err)
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.logAudit(updated.Username, "update", "staff", updated.ID, "staff account updated")
	return &updated, nil
}

func (g *GormStorage) DeleteStaff(id string) (bool, error) {
	result := g.db.Where("id = ?", id).Delete(&staffModel.Staff{})
	if result.Error != nil {
		return false, wrapDBError("delete staff", result.Error)
	}
	removed := result.RowsAffected > 0
	if removed {
		g.logAudit("", "delete", "staff", id, "staff account removed")
	}
	return removed, nil
}

func (g *GormStorage) CountStaff() (int64, error) {
	var count int64
	if err := g.db.Model(&staffModel.Staff{}).Count(&count).Error; err != nil {
		return 0, wrapDBError("count staff", err)
	}
	return count, nil
}
