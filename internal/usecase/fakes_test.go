package usecase_test

import (
	"context"
	"sync"

	"github.com/jmvillota/product-console/internal/models"
)

// fakeGateway is an in-memory stand-in for the remote product API.
type fakeGateway struct {
	mu       sync.Mutex
	products map[string]models.Product

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	verifyErr error

	verifyExists bool
	createGate   chan struct{} // when set, Create blocks until the gate closes

	listCalls   int
	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int
	verifyCalls int
}

func newFakeGateway(products ...models.Product) *fakeGateway {
	g := &fakeGateway{products: make(map[string]models.Product)}
	for _, p := range products {
		g.products[p.ID] = p
	}
	return g
}

func (g *fakeGateway) List(ctx context.Context) ([]models.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]models.Product, 0, len(g.products))
	for _, p := range g.products {
		out = append(out, p)
	}
	return out, nil
}

func (g *fakeGateway) GetByID(ctx context.Context, id string) (*models.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getCalls++
	if g.getErr != nil {
		return nil, g.getErr
	}
	p, ok := g.products[id]
	if !ok {
		return nil, &models.APIError{Kind: models.KindNotFound, Status: 404, Message: "product not found"}
	}
	return &p, nil
}

func (g *fakeGateway) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	g.mu.Lock()
	g.createCalls++
	gate := g.createGate
	err := g.createErr
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.products[product.ID] = product
	g.mu.Unlock()
	return &product, nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	g.products[id] = product
	return &product, nil
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	delete(g.products, id)
	return nil
}

func (g *fakeGateway) VerifyID(ctx context.Context, id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verifyCalls++
	if g.verifyErr != nil {
		return false, g.verifyErr
	}
	return g.verifyExists, nil
}

func (g *fakeGateway) counts() (list, get, create, update, del, verify int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls, g.getCalls, g.createCalls, g.updateCalls, g.deleteCalls, g.verifyCalls
}

// fakeNavigator records navigation requests.
type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *fakeNavigator) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}
