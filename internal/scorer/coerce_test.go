package scorer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 14.99, 14.99},
		{"int", 1500000, 1500000},
		{"int64", int64(42), 42},
		{"plain string", "86.7", 86.7},
		{"thousands separators", "1,234.5", 1234.5},
		{"grouped millions", "1,500,000", 1500000},
		{"padded whitespace", "  28 ", 28},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"non-numeric text", "abc", 0},
		{"malformed number", "12.3.4", 0},
		{"json number", json.Number("99.5"), 99.5},
		{"unsupported type", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.in))
		})
	}
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "", CoerceString(nil))
	assert.Equal(t, "Sunset Lamp", CoerceString("  Sunset Lamp  "))
	assert.Equal(t, "4.5", CoerceString(4.5))
}
