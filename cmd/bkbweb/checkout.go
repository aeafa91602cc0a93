package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/checkout"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

var checkoutCustomer checkout.Customer

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Passer la commande avec le contenu du panier",
	Args:  cobra.NoArgs,
	RunE:  runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutCustomer.Name, "name", "", "nom complet")
	checkoutCmd.Flags().StringVar(&checkoutCustomer.Phone, "phone", "", "téléphone (+224XXXXXXXXX ou XXXXXXXXX)")
	checkoutCmd.Flags().StringVar(&checkoutCustomer.Email, "email", "", "email (optionnel)")
	checkoutCmd.Flags().StringVar(&checkoutCustomer.Address, "address", "", "adresse de livraison")
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	if problems := checkoutCustomer.Validate(); len(problems) > 0 {
		fields := make([]string, 0, len(problems))
		for field := range problems {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("  --%s : %s\n", field, problems[field])
		}
		return errors.New("formulaire incomplet")
	}

	order, err := checkout.Submit(cmd.Context(), a.backend, a.cart, checkoutCustomer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			fmt.Println("Votre panier est vide. Ajoutez des produits avant de passer commande.")
			return nil
		}
		fmt.Println("Une erreur est survenue lors de la commande. Veuillez réessayer.")
		a.log.Warn("order submission failed", zap.Error(err))
		return nil
	}

	fmt.Println("✔ Commande confirmée !")
	fmt.Printf("  Numéro de commande : %s\n", order.OrderNumber)
	fmt.Printf("  Montant total      : %s\n", money.FormatGNF(order.TotalAmount))
	fmt.Printf("  Livraison          : %s\n", order.CustomerAddress)
	return nil
}
