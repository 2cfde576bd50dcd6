package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostFromMicros(t *testing.T) {
	tests := []struct {
		name   string
		micros int64
		want   string
	}{
		{name: "um e meio", micros: 1500000, want: "1.5"},
		{name: "inteiro", micros: 2000000, want: "2"},
		{name: "zero", micros: 0, want: "0"},
		{name: "um micro", micros: 1, want: "0.000001"},
		{name: "valor grande sem perda", micros: 123456789123456789, want: "123456789123.456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CostFromMicros(tt.micros)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"esperado %s, obtido %s", tt.want, got.String())
		})
	}
}
