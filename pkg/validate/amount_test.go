package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		valid  bool
	}{
		{name: "Positive amount", amount: 100, valid: true},
		{name: "Smallest valid amount", amount: 1, valid: true},
		{name: "Upper bound", amount: MaxAmount, valid: true},
		{name: "Zero", amount: 0, valid: false},
		{name: "Negative", amount: -50, valid: false},
		{name: "Above upper bound", amount: MaxAmount + 1, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsAmount(tt.amount))
		})
	}
}

func TestIsAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		valid  bool
	}{
		{name: "Option A", answer: "A", valid: true},
		{name: "Option D", answer: "D", valid: true},
		{name: "Lowercase", answer: "a", valid: false},
		{name: "Outside option set", answer: "E", valid: false},
		{name: "Empty", answer: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsAnswer(tt.answer))
		})
	}
}
