package usecase

import (
	"context"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/jmvillota/product-console/internal/client"
	"github.com/jmvillota/product-console/internal/models"
	"github.com/jmvillota/product-console/internal/pagination"
	"github.com/jmvillota/product-console/pkg/reactive"
)

// ProductList owns the client-side product cache and drives the list
// screen: load, search/paging passthroughs, and the two-step
// delete-with-confirmation. The cache is only mutated after the gateway
// confirms a delete.
type ProductList struct {
	mu sync.Mutex

	scope   *reactive.Scope
	gateway client.ProductAPI
	engine  *pagination.Engine

	products *reactive.Cell[[]models.Product]
	loading  *reactive.Cell[bool]
	errMsg   *reactive.Cell[string]
	view     *reactive.Cell[pagination.Result]

	pendingDelete *models.Product
}

func NewProductList(gateway client.ProductAPI, engine *pagination.Engine) *ProductList {
	scope := reactive.NewScope()
	products := reactive.NewCell([]models.Product(nil))
	return &ProductList{
		scope:    scope,
		gateway:  gateway,
		engine:   engine,
		products: products,
		loading:  reactive.NewCell(false),
		errMsg:   reactive.NewCell(""),
		view:     engine.PaginatedStream(scope, products),
	}
}

func (l *ProductList) Close() { l.scope.Close() }

// View is the filtered, paginated window the screen renders.
func (l *ProductList) View() *reactive.Cell[pagination.Result] { return l.view }

func (l *ProductList) Loading() *reactive.Cell[bool] { return l.loading }
func (l *ProductList) Error() *reactive.Cell[string] { return l.errMsg }
func (l *ProductList) Products() []models.Product    { return l.products.Get() }

// Load refreshes the cache from the gateway. On failure the previous
// collection stays intact and only the error message changes.
func (l *ProductList) Load(ctx context.Context) {
	l.loading.Set(true)
	l.errMsg.Set("")

	products, err := l.gateway.List(ctx)
	if err != nil {
		log.Errorw(ctx, "failed to load products", "error", err)
		message := err.Error()
		if message == "" {
			message = "failed to load products"
		}
		l.errMsg.Set(message)
		l.loading.Set(false)
		return
	}

	l.products.Set(products)
	l.loading.Set(false)
}

func (l *ProductList) Search(term string)   { l.engine.SetSearchTerm(term) }
func (l *ProductList) SetPage(page int)     { l.engine.SetPage(page) }
func (l *ProductList) SetPageSize(size int) { l.engine.SetPageSize(size) }
func (l *ProductList) ClearError()          { l.errMsg.Set("") }

// RequestDelete starts the two-step confirmation; nothing is removed
// until ConfirmDelete.
func (l *ProductList) RequestDelete(product models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pendingDelete = &product
}

// PendingDelete exposes the product awaiting confirmation, nil when no
// confirmation is open.
func (l *ProductList) PendingDelete() *models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pendingDelete
}

func (l *ProductList) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pendingDelete = nil
}

// ConfirmDelete removes the pending product. The gateway goes first;
// the local cache is only touched once the remote confirms, then the
// page is pulled back in range.
func (l *ProductList) ConfirmDelete(ctx context.Context) {
	l.mu.Lock()
	pending := l.pendingDelete
	l.pendingDelete = nil
	l.mu.Unlock()
	if pending == nil {
		return
	}

	l.loading.Set(true)

	if err := l.gateway.Delete(ctx, pending.ID); err != nil {
		log.Errorw(ctx, "failed to delete product", "id", pending.ID, "error", err)
		message := err.Error()
		if message == "" {
			message = "failed to delete product"
		}
		l.errMsg.Set(message)
		l.loading.Set(false)
		return
	}

	current := l.products.Get()
	remaining := make([]models.Product, 0, len(current))
	for _, p := range current {
		if p.ID != pending.ID {
			remaining = append(remaining, p)
		}
	}
	l.products.Set(remaining)
	l.loading.Set(false)

	l.engine.AdjustPageAfterDeletion(len(remaining))
	log.Infow(ctx, "product deleted", "id", pending.ID, "remaining", len(remaining))
}
