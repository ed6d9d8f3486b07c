package transaction

import (
	"fmt"
)

// CreateTransactionRequest is the pre-validated creation payload for a payment
// transaction. The slip filename is an opaque reference produced by the upload
// collaborator; the store never interprets it.
type CreateTransactionRequest struct {
	PayerName    string  `json:"payer_name" validate:"required,min=1,max=255"`
	PayerEmail   *string `json:"payer_email" validate:"omitempty,email"`
	PayerPhone   *string `json:"payer_phone" validate:"omitempty,max=20"`
	TotalAmount  string  `json:"total_amount" validate:"required"`
	SlipFilename string  `json:"slip_filename" validate:"required,max=512"`
}

func (r CreateTransactionRequest) Validate() error {
	if r.PayerName == "" {
		return fmt.Errorf("payerName is required")
	}
	if r.TotalAmount == "" {
		return fmt.Errorf("totalAmount is required")
	}
	if r.SlipFilename == "" {
		return fmt.Errorf("slipFilename is required")
	}
	return nil
}
