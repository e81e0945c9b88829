package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func normalized(f vehicle.SearchFilters) vehicle.SearchFilters {
	f.Normalize()
	return f
}

func TestBuildVehicleQuerySemFiltros(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{})
	q := buildVehicleQuery(filters, scope.Unrestricted())

	assert.Equal(t, []string{"v.deleted_at IS NULL"}, q.conditions)
	assert.Empty(t, q.args)
}

func TestBuildVehicleQueryEscopoRestrito(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{})
	sc := scope.RestrictedTo("loja-1", "loja-2")

	q := buildVehicleQuery(filters, sc)

	require.Len(t, q.conditions, 2)
	assert.Equal(t, "v.store_id = ANY($1)", q.conditions[1])
	require.Len(t, q.args, 1)
	assert.Equal(t, []string{"loja-1", "loja-2"}, q.args[0])
}

func TestBuildVehicleQueryEscopoRestritoVazio(t *testing.T) {
	// Manager cuja hierarquia não contém nenhuma loja não enxerga nada
	filters := normalized(vehicle.SearchFilters{})
	q := buildVehicleQuery(filters, scope.RestrictedTo())

	assert.Contains(t, q.conditions, "false")
	assert.Empty(t, q.args)
}

func TestBuildVehicleQueryFaixasDePrecoEAno(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{
		MinPrice: floatPtr(30000),
		MaxPrice: floatPtr(80000),
		YearMin:  intPtr(2018),
		YearMax:  intPtr(2024),
	})

	q := buildVehicleQuery(filters, scope.Unrestricted())

	assert.Equal(t, []string{
		"v.deleted_at IS NULL",
		"v.price >= $1",
		"v.price <= $2",
		"v.model_year >= $3",
		"v.model_year <= $4",
	}, q.conditions)
	assert.Equal(t, []interface{}{30000.0, 80000.0, 2018, 2024}, q.args)
}

func TestBuildVehicleQueryBuscaTextual(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{Search: "civic"})

	q := buildVehicleQuery(filters, scope.Unrestricted())

	require.Len(t, q.conditions, 2)
	assert.Equal(t,
		"(v.plate ILIKE $1 OR b.name ILIKE $1 OR m.name ILIKE $1 OR v.description ILIKE $1)",
		q.conditions[1])
	assert.Equal(t, []interface{}{"%civic%"}, q.args)
}

func TestBuildVehicleQueryDestaquesSemArgumentos(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{
		HomeHighlight:  true,
		BrandHighlight: true,
	})

	q := buildVehicleQuery(filters, scope.Unrestricted())

	assert.Contains(t, q.conditions, "v.home_highlight = true")
	assert.Contains(t, q.conditions, "v.brand_highlight = true")
	assert.Empty(t, q.args)
}

func TestBuildVehicleQueryMesmaEntradaMesmoSQL(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{
		CategoryID: "cat-1",
		MinPrice:   floatPtr(10000),
		Search:     "gol",
		Status:     vehicle.StatusAvailable,
	})
	sc := scope.RestrictedTo("loja-1")

	a := buildVehicleQuery(filters, sc)
	b := buildVehicleQuery(filters, sc)

	assert.Equal(t, a.selectSQL(filters), b.selectSQL(filters))
	assert.Equal(t, a.args, b.args)
}

func TestCountSQLAntesDoSelectCompartilhaArgumentos(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{Status: vehicle.StatusAvailable, Page: 2, PageSize: 10})
	q := buildVehicleQuery(filters, scope.Unrestricted())

	countSQL := q.countSQL()
	countArgs := len(q.args)

	selectSQL := q.selectSQL(filters)

	// O COUNT usa os mesmos predicados, sem os argumentos de paginação
	assert.True(t, strings.HasPrefix(countSQL, "SELECT COUNT(*)"))
	assert.Contains(t, countSQL, "v.status = $1")
	assert.Equal(t, countArgs+2, len(q.args))
	assert.Equal(t, 10, q.args[len(q.args)-2])
	assert.Equal(t, 10, q.args[len(q.args)-1])
	assert.Contains(t, selectSQL, "LIMIT $2 OFFSET $3")
}

func TestSelectSQLOrdenacao(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		order   string
		orderBy string
	}{
		{"padrão", "", "", "ORDER BY v.created_at DESC"},
		{"preço ascendente", vehicle.SortPrice, "asc", "ORDER BY v.price ASC"},
		{"ano descendente", vehicle.SortModelYear, "desc", "ORDER BY v.model_year DESC"},
		{"quilometragem", vehicle.SortMileage, "ASC", "ORDER BY v.mileage ASC"},
		{"campo desconhecido cai no padrão", "plate; DROP TABLE vehicles", "desc", "ORDER BY v.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := normalized(vehicle.SearchFilters{Sort: tt.sort, Order: tt.order})
			q := buildVehicleQuery(filters, scope.Unrestricted())

			sql := q.selectSQL(filters)

			assert.Contains(t, sql, tt.orderBy)
			assert.NotContains(t, sql, "DROP TABLE")
		})
	}
}

func TestSelectSQLPaginacao(t *testing.T) {
	filters := normalized(vehicle.SearchFilters{Page: 3, PageSize: 20})
	q := buildVehicleQuery(filters, scope.Unrestricted())

	q.selectSQL(filters)

	require.Len(t, q.args, 2)
	assert.Equal(t, 20, q.args[0])
	assert.Equal(t, 40, q.args[1])
}
