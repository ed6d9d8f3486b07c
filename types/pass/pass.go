package pass

import (
	"fmt"

	passModel "port-pass/models/pass"
)

// CreatePassRequest is the pre-validated creation payload for a single pass.
// The QR code is an opaque payload attached by the QR collaborator.
type CreatePassRequest struct {
	TransactionID string  `json:"transaction_id" validate:"required"`
	StaffID       string  `json:"staff_id" validate:"required"`
	CustomerName  string  `json:"customer_name" validate:"required,min=1,max=255"`
	PassType      string  `json:"pass_type" validate:"required"`
	IDNumber      *string `json:"id_number" validate:"omitempty,max=100"`
	PlateNumber   *string `json:"plate_number" validate:"omitempty,max=50"`
	ValidDate     string  `json:"valid_date" validate:"required"`
	PassNumber    string  `json:"pass_number" validate:"required,max=50"`
	Amount        string  `json:"amount" validate:"required"`
	QRCode        string  `json:"qr_code" validate:"required"`
}

func (r CreatePassRequest) Validate() error {
	if r.TransactionID == "" {
		return fmt.Errorf("transactionId is required")
	}
	if r.StaffID == "" {
		return fmt.Errorf("staffId is required")
	}
	if r.CustomerName == "" {
		return fmt.Errorf("customerName is required")
	}
	passType := passModel.PassType(r.PassType)
	if !passType.IsValid() {
		return fmt.Errorf("passType %q is not a valid pass type", r.PassType)
	}
	if passType.RequiresIDNumber() && (r.IDNumber == nil || *r.IDNumber == "") {
		return fmt.Errorf("idNumber is required for daily passes")
	}
	if passType.IsVehicleClass() && (r.PlateNumber == nil || *r.PlateNumber == "") {
		return fmt.Errorf("plateNumber is required for vehicle pass types")
	}
	if r.ValidDate == "" {
		return fmt.Errorf("validDate is required")
	}
	if r.PassNumber == "" {
		return fmt.Errorf("passNumber is required")
	}
	if r.Amount == "" {
		return fmt.Errorf("amount is required")
	}
	return nil
}
