package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     PaginationParams
	}{
		{"valores válidos", 2, 50, PaginationParams{Page: 2, PageSize: 50}},
		{"padrões", 0, 0, PaginationParams{Page: 1, PageSize: 20}},
		{"página negativa", -1, 20, PaginationParams{Page: 1, PageSize: 20}},
		{"tamanho acima do limite", 1, 500, PaginationParams{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPagination(tt.page, tt.pageSize))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, calculateTotalPages(45, 20))
	assert.Equal(t, 1, calculateTotalPages(20, 20))
	assert.Equal(t, 2, calculateTotalPages(21, 20))
	assert.Equal(t, 0, calculateTotalPages(0, 20))
	assert.Equal(t, 0, calculateTotalPages(10, 0))
}
