package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

// carouselSize matches the landing page carousels: ten tiles per category,
// padded by repetition when a category is short.
const carouselSize = 10

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Afficher la vitrine : produits vedettes et catégories",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	sf, err := catalog.LoadStorefront(cmd.Context(), a.backend)
	if err != nil {
		fmt.Println("Erreur lors du chargement de la boutique. Veuillez réessayer.")
		a.log.Warn("storefront fetch failed", zap.Error(err))
		return nil
	}

	fmt.Println("⭐ Produits vedettes")
	for _, p := range catalog.Featured(sf.Products) {
		printProductLine(p)
	}

	for _, c := range sf.Categories {
		info := catalog.CategoryInfo(c.ID)
		fmt.Printf("\n%s %s\n", info.Icon, c.Name)
		for _, p := range catalog.Carousel(sf.Products, c.ID, carouselSize) {
			printProductLine(p)
		}
	}
	return nil
}

func printProductLine(p catalog.Product) {
	stock := fmt.Sprintf("%d en stock", p.Stock)
	if p.Stock <= 0 {
		stock = "rupture de stock"
	}
	fmt.Printf("  [%d] %-40s %15s  (%s)\n", p.ID, p.Name, money.FormatGNF(p.Price), stock)
}
