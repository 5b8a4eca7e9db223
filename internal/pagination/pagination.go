// Package pagination turns the product collection plus the search and
// paging state into the window the list screen renders. The engine is a
// pure transform: it never touches the gateway.
package pagination

import (
	"strings"

	"github.com/jmvillota/product-console/internal/models"
	"github.com/jmvillota/product-console/pkg/reactive"
)

const (
	DefaultPageSize = 5
	defaultPage     = 0
)

// Result is one recomputed page view.
type Result struct {
	Items       []models.Product
	Total       int
	PageSize    int
	CurrentPage int
}

// Engine owns the per-list-session paging state. Changing the page size
// or the search term jumps back to the first page; changing the page
// directly does not.
type Engine struct {
	pageSize    *reactive.Cell[int]
	currentPage *reactive.Cell[int]
	searchTerm  *reactive.Cell[string]
}

func NewEngine() *Engine {
	return &Engine{
		pageSize:    reactive.NewCell(DefaultPageSize),
		currentPage: reactive.NewCell(defaultPage),
		searchTerm:  reactive.NewCell(""),
	}
}

// PaginatedStream derives a live Result cell from the source
// collection. Every change to the source or to any engine field
// recomputes the window. Pages past the end yield an empty window, not
// an error; the display layer decides what to do with them.
func (e *Engine) PaginatedStream(scope *reactive.Scope, source *reactive.Cell[[]models.Product]) *reactive.Cell[Result] {
	out := reactive.NewCell(Result{PageSize: e.pageSize.Get()})

	recompute := func() {
		out.Set(paginate(source.Get(), e.searchTerm.Get(), e.pageSize.Get(), e.currentPage.Get()))
	}
	source.Subscribe(scope, func([]models.Product) { recompute() })
	e.searchTerm.Subscribe(scope, func(string) { recompute() })
	e.pageSize.Subscribe(scope, func(int) { recompute() })
	e.currentPage.Subscribe(scope, func(int) { recompute() })

	return out
}

func paginate(products []models.Product, searchTerm string, pageSize, currentPage int) Result {
	filtered := filterProducts(products, searchTerm)

	start := currentPage * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Items:       filtered[start:end],
		Total:       len(filtered),
		PageSize:    pageSize,
		CurrentPage: currentPage,
	}
}

// filterProducts keeps products whose name, description or id contain
// the term, case-insensitively. Empty term keeps everything.
func filterProducts(products []models.Product, searchTerm string) []models.Product {
	if searchTerm == "" {
		return products
	}
	term := strings.ToLower(searchTerm)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.ID), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (e *Engine) SetPage(page int) {
	e.currentPage.Set(page)
}

func (e *Engine) SetPageSize(pageSize int) {
	e.pageSize.Set(pageSize)
	e.currentPage.Set(defaultPage)
}

func (e *Engine) SetSearchTerm(searchTerm string) {
	e.searchTerm.Set(searchTerm)
	e.currentPage.Set(defaultPage)
}

// AdjustPageAfterDeletion pulls the current page back in range after an
// item was removed, so the user does not land on a now-empty page. An
// empty collection leaves the page alone.
func (e *Engine) AdjustPageAfterDeletion(remainingTotal int) {
	if remainingTotal == 0 {
		return
	}
	pageSize := e.pageSize.Get()
	totalPages := (remainingTotal + pageSize - 1) / pageSize
	if e.currentPage.Get() >= totalPages {
		e.currentPage.Set(totalPages - 1)
	}
}

func (e *Engine) Reset() {
	e.pageSize.Set(DefaultPageSize)
	e.currentPage.Set(defaultPage)
	e.searchTerm.Set("")
}

func (e *Engine) CurrentPage() int   { return e.currentPage.Get() }
func (e *Engine) PageSize() int      { return e.pageSize.Get() }
func (e *Engine) SearchTerm() string { return e.searchTerm.Get() }
