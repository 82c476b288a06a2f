package knownids_test

import (
	"testing"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/knownids"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := config.New()

	tests := []struct {
		msg     string
		ids     []string
		wantErr bool
	}{
		{
			msg: "valid literals",
			ids: []string{"a1b2c3d4e5f60718a", "zzzzzzzzzzzzzzzzz"},
		},
		{
			msg: "empty list",
			ids: nil,
		},
		{
			msg:     "wrong width",
			ids:     []string{"a1b2c3"},
			wantErr: true,
		},
		{
			msg:     "wrong alphabet",
			ids:     []string{"A1B2C3D4E5F60718A"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			k := knownids.KnownIDsConfig{KnownIDs: tt.ids}
			err := k.Validate(&cfg.Identifier)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
