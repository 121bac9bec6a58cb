package qrcode

import (
	"encoding/json"
	"testing"

	"chorechart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateVoucherQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateVoucherQR(service.VoucherData{
		RedemptionID: uuid.New(),
		UserID:       uuid.New(),
		RewardTitle:  "冰淇淋",
	})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseVoucherQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	redemptionID := uuid.New()
	userID := uuid.New()

	valid, err := json.Marshal(map[string]string{
		"type":          "redemption_voucher",
		"redemption_id": redemptionID.String(),
		"user_id":       userID.String(),
		"reward_title":  "Movie night",
	})
	require.NoError(t, err)

	data, err := svc.ParseVoucherQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, redemptionID, data.RedemptionID)
	assert.Equal(t, userID, data.UserID)
	assert.Equal(t, "Movie night", data.RewardTitle)

	tests := []struct {
		name  string
		input string
	}{
		{"not json", "hello"},
		{"wrong type", `{"type":"subscription","redemption_id":"` + redemptionID.String() + `"}`},
		{"bad redemption id", `{"type":"redemption_voucher","redemption_id":"x","user_id":"` + userID.String() + `"}`},
		{"bad user id", `{"type":"redemption_voucher","redemption_id":"` + redemptionID.String() + `","user_id":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseVoucherQR(tt.input)
			assert.Error(t, err)
		})
	}
}
