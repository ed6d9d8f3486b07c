package staff

import (
	"time"
)

// Staff is an operator account used to attribute and authorize pass issuance.
type Staff struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string `gorm:"type:varchar(255);not null;unique" json:"username"`

	// One-way bcrypt hash; the plaintext is never stored or exposed.
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	FullName    string `gorm:"type:varchar(255);not null" json:"full_name"`
	Designation string `gorm:"type:varchar(255);not null" json:"designation"`
	Department  string `gorm:"type:varchar(255);not null" json:"department"`
	IsAdmin     bool   `gorm:"type:bool;default:false" json:"is_admin"`
	IsActive    bool   `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
