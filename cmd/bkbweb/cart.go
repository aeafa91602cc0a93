package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/cart"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Gérer le panier",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <productID>",
	Short: "Ajouter un produit au panier",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <productID>",
	Short: "Retirer un produit du panier",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <productID> <quantity>",
	Short: "Changer la quantité d'un article (0 le retire)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartUpdate,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Afficher le contenu du panier",
	Args:  cobra.NoArgs,
	RunE:  runCartShow,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Vider le panier",
	Args:  cobra.NoArgs,
	RunE:  runCartClear,
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartUpdateCmd, cartShowCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
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

	// Stock failures are messages to the customer, not command failures.
	if err := a.cart.Add(product); err != nil {
		switch {
		case errors.Is(err, cart.ErrOutOfStock):
			fmt.Printf("Désolé, ce produit est en rupture de stock : %s\n", product.Name)
		case errors.Is(err, cart.ErrStockLimitReached):
			fmt.Printf("Désolé, stock maximum atteint pour %s (%d disponibles)\n", product.Name, product.Stock)
		default:
			return err
		}
		return nil
	}

	fmt.Printf("✔ %s ajouté au panier (%d articles, total %s)\n",
		product.Name, a.cart.ItemCount(), money.FormatGNF(a.cart.Total()))
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("identifiant produit invalide: %q", args[0])
	}
	a.cart.Remove(id)
	fmt.Printf("Panier : %d articles, total %s\n", a.cart.ItemCount(), money.FormatGNF(a.cart.Total()))
	return nil
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("identifiant produit invalide: %q", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantité invalide: %q", args[1])
	}

	// The manager does not re-check stock on direct quantity edits, so the
	// command clamps to the snapshotted stock the way the quantity stepper
	// did.
	for _, li := range a.cart.Items() {
		if li.ID == id && quantity > li.Stock {
			fmt.Printf("Quantité ramenée à %d (stock disponible)\n", li.Stock)
			quantity = li.Stock
			break
		}
	}

	a.cart.UpdateQuantity(id, quantity)
	fmt.Printf("Panier : %d articles, total %s\n", a.cart.ItemCount(), money.FormatGNF(a.cart.Total()))
	return nil
}

func runCartShow(cmd *cobra.Command, args []string) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Votre panier est vide.")
		return nil
	}

	fmt.Println("🛒 Votre panier")
	for _, li := range items {
		fmt.Printf("  [%d] %-40s %2d × %s = %s\n",
			li.ID, li.Name, li.Quantity, money.FormatGNF(li.Price), money.FormatGNF(li.Subtotal()))
	}
	fmt.Printf("Total : %s (%d articles)\n", money.FormatGNF(a.cart.Total()), a.cart.ItemCount())
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	a.cart.Clear()
	fmt.Println("Panier vidé.")
	return nil
}
