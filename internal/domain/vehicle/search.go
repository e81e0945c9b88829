package vehicle

import (
	"strings"
)

// Campos de ordenação aceitos pelas buscas. Valores fora deste conjunto são
// rejeitados na validação de entrada, antes de chegar ao repositório.
const (
	SortCreatedAt = "created_at"
	SortPrice     = "price"
	SortModelYear = "model_year"
	SortMileage   = "mileage"
)

// ValidSort verifica se o campo de ordenação é aceito
func ValidSort(sort string) bool {
	switch sort {
	case SortCreatedAt, SortPrice, SortModelYear, SortMileage:
		return true
	}
	return false
}

// ValidOrder verifica se a direção de ordenação é asc ou desc, sem
// distinção de caixa
func ValidOrder(order string) bool {
	switch strings.ToLower(order) {
	case "asc", "desc":
		return true
	}
	return false
}

// SearchFilters é o conjunto de predicados opcionais de uma busca de
// veículos. Campos zerados não impõem restrição; todos os predicados
// presentes são combinados com AND.
type SearchFilters struct {
	CategoryID     string
	BrandFipeID    string
	ModelFipeID    string
	StoreID        string
	MinPrice       *float64
	MaxPrice       *float64
	YearMin        *int
	YearMax        *int
	HomeHighlight  bool
	BrandHighlight bool

	// Search aplica busca por substring, sem distinção de caixa, em
	// placa, nome da marca, nome do modelo e descrição
	Search string

	// Status restringe a um status específico; vazio não restringe
	Status Status

	Sort     string
	Order    string
	Page     int
	PageSize int
}

// Normalize aplica os padrões de ordenação e paginação
func (f *SearchFilters) Normalize() {
	if f.Sort == "" {
		f.Sort = SortCreatedAt
	}
	if f.Order == "" {
		f.Order = "desc"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	} else if f.PageSize > 100 {
		f.PageSize = 100
	}
}

// Offset calcula o deslocamento da página corrente
func (f *SearchFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}
