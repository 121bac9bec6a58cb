package config

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LedgerTimezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "default", timezone: "", wantErr: false},
		{name: "named zone", timezone: "Asia/Taipei", wantErr: false},
		{name: "typo", timezone: "Asia/Taipeii", wantErr: true},
		{name: "garbage", timezone: "not a zone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Ledger: &LedgerConfig{Timezone: tt.timezone}}

			err := validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.timezone)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNew_RejectsUnknownLedgerTimezone(t *testing.T) {
	t.Setenv("LEDGER_TIMEZONE", "Asia/Taipeii")

	_, err := New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Asia/Taipeii")
}
