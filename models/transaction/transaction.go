package transaction

import (
	"time"

	"port-pass/utils"
)

// Transaction represents one payment event covering one or more passes. Rows are
// append-only: once created they are never mutated or deleted.
type Transaction struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PayerName        string    `gorm:"type:varchar(255);not null" json:"payer_name"`
	PayerEmail       *string   `gorm:"type:varchar(255)" json:"payer_email,omitempty"`
	PayerPhone       *string   `gorm:"type:varchar(20)" json:"payer_phone,omitempty"`
	TotalAmountCents int64     `gorm:"not null" json:"total_amount_cents"` // minor units, never float
	SlipFilename     string    `gorm:"type:varchar(512);not null" json:"slip_filename"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TotalAmount returns the payment total as a 2-decimal string.
func (t Transaction) TotalAmount() string {
	return utils.FormatCents(t.TotalAmountCents)
}
