package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{
			name:  "simple address",
			email: "alice@example.com",
			want:  "clinic_alice",
		},
		{
			name:  "dotted local part",
			email: "front.desk@clinic.org",
			want:  "clinic_front.desk",
		},
		{
			name:  "same local part different domain collides",
			email: "alice@other.org",
			want:  "clinic_alice",
		},
		{
			name:    "missing at sign",
			email:   "not-an-email",
			wantErr: true,
		},
		{
			name:    "empty local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IDFromEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
