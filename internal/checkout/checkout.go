// Package checkout turns a cart into a backend order: customer form
// validation, payload assembly from an immutable cart copy, and the
// clear-on-success rule.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alseiny20/bkbweb-go/internal/api"
	"github.com/alseiny20/bkbweb-go/internal/cart"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Customer is the checkout form. Email is the only optional field.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

var (
	// Guinean numbers: optional +224 prefix, then 9 or 10 digits.
	phonePattern = regexp.MustCompile(`^(\+224)?[0-9]{9,10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneNoise   = strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")
)

// Validate returns one message per invalid field, keyed by field name.
// An empty map means the form is good.
func (c Customer) Validate() map[string]string {
	problems := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		problems["name"] = "le nom est obligatoire"
	}

	switch phone := strings.TrimSpace(c.Phone); {
	case phone == "":
		problems["phone"] = "le numéro de téléphone est obligatoire"
	case !phonePattern.MatchString(phoneNoise.Replace(phone)):
		problems["phone"] = "format invalide, utilisez +224XXXXXXXXX ou XXXXXXXXX"
	}

	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		problems["email"] = "email invalide"
	}

	if strings.TrimSpace(c.Address) == "" {
		problems["address"] = "l'adresse de livraison est obligatoire"
	}

	return problems
}

// OrderCreator is the slice of the backend client checkout needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (api.Order, error)
}

// Submit validates the customer, posts the current cart as an order and, only
// once the backend confirms it, clears the cart. The returned order carries
// the backend-assigned order number.
func Submit(ctx context.Context, backend OrderCreator, manager *cart.Manager, customer Customer) (api.Order, error) {
	if problems := customer.Validate(); len(problems) > 0 {
		return api.Order{}, fmt.Errorf("invalid customer details: %s", joinProblems(problems))
	}

	items := manager.Items()
	if len(items) == 0 {
		return api.Order{}, ErrEmptyCart
	}

	req := api.CreateOrderRequest{
		CustomerName:    strings.TrimSpace(customer.Name),
		CustomerPhone:   strings.TrimSpace(customer.Phone),
		CustomerEmail:   strings.TrimSpace(customer.Email),
		CustomerAddress: strings.TrimSpace(customer.Address),
		Items:           toOrderItems(items),
		TotalAmount:     manager.Total(),
	}

	order, err := backend.CreateOrder(ctx, req)
	if err != nil {
		// Cart stays intact so the customer can retry.
		return api.Order{}, err
	}

	manager.Clear()
	return order, nil
}

func toOrderItems(items []cart.LineItem) []api.OrderItem {
	out := make([]api.OrderItem, len(items))
	for i, li := range items {
		out[i] = api.OrderItem{
			ProductID: li.ID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
			Image:     li.Image,
		}
	}
	return out
}

func joinProblems(problems map[string]string) string {
	fields := make([]string, 0, len(problems))
	for field := range problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return strings.Join(fields, ", ")
}
