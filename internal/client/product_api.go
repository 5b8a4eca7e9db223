package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jmvillota/product-console/internal/config"
	"github.com/jmvillota/product-console/internal/models"
)

// ProductAPI is the gateway to the remote product catalog. Every
// failure comes back as a *models.APIError carrying a user-facing
// message (see errors.go).
type ProductAPI interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, product models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	VerifyID(ctx context.Context, id string) (bool, error)
}

type productAPI struct {
	httpClient *http.Client
	baseURL    string
}

func NewProductAPI(cfg *config.Config) ProductAPI {
	return &productAPI{
		httpClient: &http.Client{Timeout: cfg.API.Timeout},
		baseURL:    cfg.API.BaseURL,
	}
}

func (c *productAPI) List(ctx context.Context) ([]models.Product, error) {
	var list models.ProductList
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

func (c *productAPI) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *productAPI) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, c.baseURL, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *productAPI) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/"+id, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *productAPI) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/"+id, nil, nil)
}

// VerifyID asks the API whether a product id is already taken. Callers
// that only need a best-effort answer treat errors as "not exists".
func (c *productAPI) VerifyID(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/verification/"+id, nil, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (c *productAPI) do(ctx context.Context, method, url string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return normalizeNetworkError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeHTTPError(ctx, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
