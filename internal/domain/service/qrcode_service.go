package service

import (
	"github.com/google/uuid"
)

// VoucherData is the payload encoded in a redemption voucher.
type VoucherData struct {
	RedemptionID uuid.UUID
	UserID       uuid.UUID
	RewardTitle  string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVoucherQR renders a PNG voucher for an approved redemption.
	GenerateVoucherQR(data VoucherData) ([]byte, error)

	// ParseVoucherQR parses the encoded voucher payload.
	ParseVoucherQR(qrData string) (*VoucherData, error)
}
