package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Lister is the slice of the backend client the storefront fetch needs.
type Lister interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListProducts(ctx context.Context) ([]Product, error)
}

// Storefront holds everything the landing view renders.
type Storefront struct {
	Categories []Category
	Products   []Product
}

// LoadStorefront fetches categories and products in parallel. Both must
// succeed; the first error cancels the other fetch and is returned.
func LoadStorefront(ctx context.Context, backend Lister) (Storefront, error) {
	var sf Storefront

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := backend.ListCategories(ctx)
		if err != nil {
			return err
		}
		sf.Categories = categories
		return nil
	})
	g.Go(func() error {
		products, err := backend.ListProducts(ctx)
		if err != nil {
			return err
		}
		sf.Products = products
		return nil
	})

	if err := g.Wait(); err != nil {
		return Storefront{}, err
	}
	return sf, nil
}
