package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

var catalogCategory int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lister les produits du catalogue, avec filtre par catégorie",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().IntVar(&catalogCategory, "category", 0,
		"catégorie (1=Téléphones, 2=Électronique, 3=Électroménager)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	var (
		products []catalog.Product
		err      error
	)
	if catalogCategory != 0 {
		products, err = a.backend.ListProductsByCategory(cmd.Context(), catalogCategory)
	} else {
		products, err = a.backend.ListProducts(cmd.Context())
	}
	if err != nil {
		fmt.Println("Erreur lors du chargement des données.")
		a.log.Warn("catalog fetch failed", zap.Int("category", catalogCategory), zap.Error(err))
		return nil
	}

	if catalogCategory != 0 {
		info := catalog.CategoryInfo(catalogCategory)
		fmt.Printf("%s %s\n", info.Icon, info.Name)
	} else {
		fmt.Println("🛍️ Tous les produits")
	}

	if len(products) == 0 {
		fmt.Println("  Aucun produit dans cette catégorie.")
		return nil
	}
	for _, p := range products {
		printProductLine(p)
	}
	return nil
}
