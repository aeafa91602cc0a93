package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

// similarLimit matches the detail page: up to ten same-category suggestions.
const similarLimit = 10

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Afficher la fiche d'un produit et les produits similaires",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

func init() {
	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("identifiant produit invalide: %q", args[0])
	}

	product, err := a.backend.GetProduct(cmd.Context(), id)
	if err != nil {
		fmt.Println("Erreur lors du chargement du produit.")
		a.log.Warn("product fetch failed", zap.Int("id", id), zap.Error(err))
		return nil
	}

	info := catalog.CategoryInfo(product.CategoryID)
	fmt.Printf("%s %s\n", info.Icon, product.Name)
	fmt.Printf("  Prix      : %s\n", money.FormatGNF(product.Price))
	if product.Stock > 0 {
		fmt.Printf("  Stock     : %d disponibles\n", product.Stock)
	} else {
		fmt.Println("  Stock     : rupture de stock")
	}
	fmt.Printf("  Catégorie : %s\n", info.Name)
	if product.Description != "" {
		fmt.Printf("  %s\n", product.Description)
	}

	// Same-category suggestions come from the full list, like the detail page.
	all, err := a.backend.ListProducts(cmd.Context())
	if err != nil {
		a.log.Warn("similar products unavailable", zap.Error(err))
		return nil
	}
	similar := catalog.Similar(all, product, similarLimit)
	if len(similar) > 0 {
		fmt.Println("\nProduits similaires :")
		for _, p := range similar {
			printProductLine(p)
		}
	}
	return nil
}
