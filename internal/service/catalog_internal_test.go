package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		page, size int
		start, end int
	}{
		{"first page", 6, 1, 5, 0, 5},
		{"partial last page", 6, 2, 5, 5, 6},
		{"exact fit", 6, 2, 3, 3, 6},
		{"past the end", 6, 3, 3, 6, 6},
		{"far past the end", 6, 100, 5, 6, 6},
		{"page zero", 6, 0, 5, 0, 0},
		{"negative page", 6, -1, 2, 0, 0},
		{"zero size", 6, 1, 0, 0, 0},
		{"negative size", 6, 1, -5, 0, 0},
		{"empty list", 0, 1, 5, 0, 0},
		{"huge page", 6, math.MaxInt, 2, 6, 6},
		{"huge size", 6, 1, math.MaxInt, 0, 6},
		{"huge both", 6, math.MaxInt, math.MaxInt, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pageWindow(tt.n, tt.page, tt.size)
			assert.Equal(t, tt.start, start, "start")
			assert.Equal(t, tt.end, end, "end")
		})
	}
}
