package awsid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		expected []byte
	}{
		{
			name:     "empty payload decodes to no bytes",
			payload:  "",
			expected: []byte{},
		},
		{
			name:     "alphabet floor",
			payload:  "AA",
			expected: []byte{0x00},
		},
		{
			name:     "alphabet ceiling",
			payload:  "74",
			expected: []byte{0xFF},
		},
		{
			name:     "access key payload window",
			payload:  "SP2TPHJSQE",
			expected: []byte{0x93, 0xF5, 0x37, 0x9D, 0x32, 0x81},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := decodeBase32(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestDecodeBase32Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "digit zero", payload: "AA0A"},
		{name: "digit one", payload: "AA1A"},
		{name: "digit eight", payload: "AA8A"},
		{name: "digit nine", payload: "AA9A"},
		{name: "padding character", payload: "AA=="},
		{name: "lowercase not normalized here", payload: "aa"},
		{name: "five leftover bits", payload: "A"},
		{name: "seven leftover bits", payload: "AAA"},
		{name: "nonzero leftover bits", payload: "AB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := decodeBase32(tt.payload)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
			assert.Nil(t, decoded)
		})
	}
}

// Confirms the mask keeps bits 7..46 of the 48-bit window: the payload
// window 93 F5 37 9D 32 81 must yield (0x93F5379D3281 & 0x7FFFFFFFFF80) >> 7.
func TestAccountMask(t *testing.T) {
	t.Parallel()

	const z = uint64(0x93F5379D3281)
	assert.Equal(t, uint64(171436882533), (z&accountMask)>>accountShift)

	accountID, err := AccountID("AKIASP2TPHJSQE")
	require.NoError(t, err)
	assert.Equal(t, "171436882533", accountID)
}
