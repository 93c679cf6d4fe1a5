package conductor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind int

const (
	kindAlpha kind = iota
	kindBeta
	kindGamma
	kindUnregistered
)

var testCodec = MustTokenTable(map[kind]string{
	kindAlpha: "Alpha",
	kindBeta:  "Beta",
	kindGamma: "Gamma",
})

func TestTokenTableRoundTrip(t *testing.T) {
	for _, k := range []kind{kindAlpha, kindBeta, kindGamma} {
		got, err := testCodec.Decode(testCodec.Encode(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestTokenTableDecodeUnknown(t *testing.T) {
	for _, token := range []string{"", "alpha", "Delta", Sentinel} {
		t.Run(token, func(t *testing.T) {
			_, err := testCodec.Decode(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownToken))

			var unknown *UnknownTokenError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, token, unknown.Token)
		})
	}
}

func TestNewTokenTableRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		table map[kind]string
		want  error
	}{
		{
			name:  "duplicate token",
			table: map[kind]string{kindAlpha: "Same", kindBeta: "Same"},
			want:  ErrDuplicateToken,
		},
		{
			name:  "sentinel token",
			table: map[kind]string{kindAlpha: Sentinel},
			want:  ErrReservedToken,
		},
		{
			name:  "empty token",
			table: map[kind]string{kindAlpha: ""},
			want:  ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenTable(tt.table)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenTableTokensSorted(t *testing.T) {
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, testCodec.Tokens())
}

func TestEncodeUnregisteredPanics(t *testing.T) {
	assert.Panics(t, func() { testCodec.Encode(kindUnregistered) })
}

func TestMustDecode(t *testing.T) {
	assert.Equal(t, kindBeta, MustDecode[kind](testCodec, "Beta"))
	assert.Panics(t, func() { MustDecode[kind](testCodec, "nope") })
}
