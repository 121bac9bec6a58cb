package qrcode

import (
	"encoding/json"

	"chorechart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const voucherType = "redemption_voucher"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// voucherPayload is the JSON encoded into a voucher QR code.
type voucherPayload struct {
	Type         string `json:"type"`
	RedemptionID string `json:"redemption_id"`
	UserID       string `json:"user_id"`
	RewardTitle  string `json:"reward_title"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVoucherQR renders an approved redemption as a PNG QR code.
func (s *qrcodeService) GenerateVoucherQR(data service.VoucherData) ([]byte, error) {
	jsonData, err := json.Marshal(voucherPayload{
		Type:         voucherType,
		RedemptionID: data.RedemptionID.String(),
		UserID:       data.UserID.String(),
		RewardTitle:  data.RewardTitle,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal voucher data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseVoucherQR decodes the text content of a voucher QR code.
func (s *qrcodeService) ParseVoucherQR(qrData string) (*service.VoucherData, error) {
	var payload voucherPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal voucher data")
	}

	if payload.Type != voucherType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}

	redemptionID, err := uuid.Parse(payload.RedemptionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redemption ID")
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user ID")
	}

	return &service.VoucherData{
		RedemptionID: redemptionID,
		UserID:       userID,
		RewardTitle:  payload.RewardTitle,
	}, nil
}
