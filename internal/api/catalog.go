package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	var product catalog.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/category/%d", categoryID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
