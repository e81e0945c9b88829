package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAplicaPadroes(t *testing.T) {
	f := SearchFilters{}
	f.Normalize()

	assert.Equal(t, SortCreatedAt, f.Sort)
	assert.Equal(t, "desc", f.Order)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PageSize)
}

func TestNormalizeLimitaTamanhoDaPagina(t *testing.T) {
	f := SearchFilters{Page: -3, PageSize: 500}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 100, f.PageSize)
}

func TestNormalizePreservaValoresValidos(t *testing.T) {
	f := SearchFilters{Sort: SortPrice, Order: "asc", Page: 2, PageSize: 50}
	f.Normalize()

	assert.Equal(t, SortPrice, f.Sort)
	assert.Equal(t, "asc", f.Order)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 50, f.PageSize)
}

func TestOffset(t *testing.T) {
	f := SearchFilters{Page: 3, PageSize: 20}
	assert.Equal(t, 40, f.Offset())

	f = SearchFilters{Page: 1, PageSize: 20}
	assert.Equal(t, 0, f.Offset())
}

func TestValidOrder(t *testing.T) {
	assert.True(t, ValidOrder("asc"))
	assert.True(t, ValidOrder("desc"))
	assert.True(t, ValidOrder("ASC"))
	assert.True(t, ValidOrder("Desc"))
	assert.False(t, ValidOrder("banana"))
	assert.False(t, ValidOrder(""))
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(SortCreatedAt))
	assert.True(t, ValidSort(SortPrice))
	assert.True(t, ValidSort(SortModelYear))
	assert.True(t, ValidSort(SortMileage))
	assert.False(t, ValidSort("plate"))
	assert.False(t, ValidSort(""))
}
