package pass

import (
	"time"

	"port-pass/utils"
)

// Pass represents a single port-access credential issued against a transaction.
// Rows are immutable after creation.
type Pass struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	// Foreign key to the covering payment transaction; must resolve at creation.
	TransactionID string `gorm:"type:varchar(36);not null;index" json:"transaction_id"`

	// Staff account that issued the pass.
	StaffID string `gorm:"type:varchar(36);not null" json:"staff_id"`

	CustomerName string   `gorm:"type:varchar(255);not null" json:"customer_name"`
	PassType     PassType `gorm:"type:varchar(20);not null" json:"pass_type"`
	IDNumber     *string  `gorm:"type:varchar(100)" json:"id_number,omitempty"`
	PlateNumber  *string  `gorm:"type:varchar(50)" json:"plate_number,omitempty"`
	ValidDate    string   `gorm:"type:varchar(10);not null" json:"valid_date"` // YYYY-MM-DD
	PassNumber   string   `gorm:"type:varchar(50);not null;unique" json:"pass_number"`
	AmountCents  int64    `gorm:"not null" json:"amount_cents"` // minor units, never float

	// Opaque payload generated and interpreted by the QR collaborator only.
	QRCode string `gorm:"type:text;not null" json:"qr_code"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// Amount returns the pass fee as a 2-decimal string.
func (p Pass) Amount() string {
	return utils.FormatCents(p.AmountCents)
}
