// Package queryparams liste sayfalarının ortak sorgu parametrelerini ve
// sayfalama sonucunu tanımlar.
package queryparams

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	// MaxPerPage uygulama genelindeki üst sınırdır; cursor/continuation yoktur.
	MaxPerPage     = 1000
	DefaultOrderBy = "desc"
)

// ListParams query string'den parse edilen liste parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"q"` // serbest metin arama
}

// DefaultListParams varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sınır dışı değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset SQL OFFSET değerini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisi.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult liste verisi + meta.
type PaginatedResult struct {
	Data interface{}
	Meta PaginationMeta
}

// NewPaginatedResult meta alanlarını hesaplayarak sonucu kurar.
func NewPaginatedResult(data interface{}, params ListParams, totalItems int64) *PaginatedResult {
	totalPages := 0
	if params.PerPage > 0 {
		totalPages = int((totalItems + int64(params.PerPage) - 1) / int64(params.PerPage))
	}
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
		},
	}
}
