package repository

import (
	"fmt"
	"strings"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
)

// vehicleSortColumns mapeia os campos de ordenação aceitos para as colunas
// reais. Qualquer valor fora do mapa cai no padrão created_at, então nenhum
// texto de entrada chega à cláusula ORDER BY.
var vehicleSortColumns = map[string]string{
	vehicle.SortCreatedAt: "v.created_at",
	vehicle.SortPrice:     "v.price",
	vehicle.SortModelYear: "v.model_year",
	vehicle.SortMileage:   "v.mileage",
}

// vehicleQuery acumula predicados e argumentos posicionais da busca de
// veículos. Os filtros entram sempre na mesma ordem, para que a mesma
// entrada produza exatamente o mesmo SQL.
type vehicleQuery struct {
	conditions []string
	args       []interface{}
}

// buildVehicleQuery monta os predicados a partir dos filtros e do escopo de
// acesso. Espera filtros já normalizados.
func buildVehicleQuery(filters vehicle.SearchFilters, sc scope.Scope) *vehicleQuery {
	q := &vehicleQuery{
		conditions: []string{"v.deleted_at IS NULL"},
	}

	if !sc.All {
		if len(sc.StoreIDs) == 0 {
			// Escopo restrito sem lojas não enxerga nada
			q.conditions = append(q.conditions, "false")
		} else {
			q.add("v.store_id = ANY(%s)", sc.StoreIDs)
		}
	}

	if filters.StoreID != "" {
		q.add("v.store_id = %s", filters.StoreID)
	}
	if filters.CategoryID != "" {
		q.add("v.category_id = %s", filters.CategoryID)
	}
	if filters.BrandFipeID != "" {
		q.add("b.brand_fipe_id = %s", filters.BrandFipeID)
	}
	if filters.ModelFipeID != "" {
		q.add("m.model_fipe_id = %s", filters.ModelFipeID)
	}
	if filters.MinPrice != nil {
		q.add("v.price >= %s", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q.add("v.price <= %s", *filters.MaxPrice)
	}
	if filters.YearMin != nil {
		q.add("v.model_year >= %s", *filters.YearMin)
	}
	if filters.YearMax != nil {
		q.add("v.model_year <= %s", *filters.YearMax)
	}
	if filters.HomeHighlight {
		q.conditions = append(q.conditions, "v.home_highlight = true")
	}
	if filters.BrandHighlight {
		q.conditions = append(q.conditions, "v.brand_highlight = true")
	}
	if filters.Status != "" {
		q.add("v.status = %s", string(filters.Status))
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		placeholder := q.placeholder(pattern)
		q.conditions = append(q.conditions, fmt.Sprintf(
			"(v.plate ILIKE %[1]s OR b.name ILIKE %[1]s OR m.name ILIKE %[1]s OR v.description ILIKE %[1]s)",
			placeholder))
	}

	return q
}

// add registra um predicado com um argumento posicional
func (q *vehicleQuery) add(format string, arg interface{}) {
	q.conditions = append(q.conditions, fmt.Sprintf(format, q.placeholder(arg)))
}

// placeholder registra o argumento e retorna seu marcador posicional
func (q *vehicleQuery) placeholder(arg interface{}) string {
	q.args = append(q.args, arg)
	return fmt.Sprintf("$%d", len(q.args))
}

const vehicleFromClause = `
	FROM vehicles v
	JOIN stores s ON s.id = v.store_id
	JOIN categories c ON c.id = v.category_id
	JOIN brands b ON b.id = v.brand_id
	JOIN models m ON m.id = v.model_id
`

// whereClause monta a cláusula WHERE completa
func (q *vehicleQuery) whereClause() string {
	return "WHERE " + strings.Join(q.conditions, " AND ")
}

// selectSQL monta o SELECT paginado. O LIMIT e o OFFSET entram como
// argumentos posicionais ao final.
func (q *vehicleQuery) selectSQL(filters vehicle.SearchFilters) string {
	sortColumn, ok := vehicleSortColumns[filters.Sort]
	if !ok {
		sortColumn = vehicleSortColumns[vehicle.SortCreatedAt]
	}
	direction := "DESC"
	if strings.EqualFold(filters.Order, "asc") {
		direction = "ASC"
	}

	limit := q.placeholder(filters.PageSize)
	offset := q.placeholder(filters.Offset())

	return "SELECT " + vehicleSelectColumns + vehicleFromClause + q.whereClause() +
		fmt.Sprintf(" ORDER BY %s %s LIMIT %s OFFSET %s", sortColumn, direction, limit, offset)
}

// countSQL monta o COUNT com os mesmos predicados da página. Deve ser
// chamado antes de selectSQL, que acrescenta os argumentos de paginação.
func (q *vehicleQuery) countSQL() string {
	return "SELECT COUNT(*)" + vehicleFromClause + q.whereClause()
}
