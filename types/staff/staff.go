package staff

import (
	"fmt"
)

// CreateStaffRequest is the pre-validated creation payload for a staff account.
// Password arrives in plaintext and is hashed by the credential service before
// anything is stored; it is never logged or echoed back.
type CreateStaffRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=255"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=1,max=255"`
	Designation string `json:"designation" validate:"required,max=255"`
	Department  string `json:"department" validate:"required,max=255"`
	IsAdmin     bool   `json:"is_admin"`
	IsActive    *bool  `json:"is_active"` // defaults to true when omitted
}

func (r CreateStaffRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.FullName == "" {
		return fmt.Errorf("fullName is required")
	}
	return nil
}

// UpdateStaffRequest carries a partial staff update; nil fields are left
// untouched. A non-nil Password is re-hashed, otherwise the stored hash is
// preserved unchanged.
type UpdateStaffRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=1,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	FullName    *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Designation *string `json:"designation" validate:"omitempty,max=255"`
	Department  *string `json:"department" validate:"omitempty,max=255"`
	IsAdmin     *bool   `json:"is_admin"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateStaffRequest) Validate() error {
	if r.Username != nil && *r.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if r.Password != nil && *r.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if r.FullName != nil && *r.FullName == "" {
		return fmt.Errorf("fullName cannot be empty")
	}
	return nil
}
