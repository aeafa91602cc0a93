package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status the admin panel can assign, in workflow
// order.
var OrderStatuses = []OrderStatus{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// OrderItem is a cart line as the order endpoints see it: the product
// snapshot fields plus the ordered quantity.
type OrderItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
}

// CreateOrderRequest mirrors the POST /orders contract. CustomerEmail is the
// only optional field; the backend stores null for an empty one.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	var resp struct {
		Success bool  `json:"success"`
		Order   Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return Order{}, err
	}
	if !resp.Success {
		return Order{}, errors.New("POST /orders: backend rejected the order")
	}
	return resp.Order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status OrderStatus) (Order, error) {
	body := struct {
		Status OrderStatus `json:"status"`
	}{Status: status}

	var order Order
	path := fmt.Sprintf("/orders/%d/status", orderID)
	if err := c.do(ctx, http.MethodPatch, path, body, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, nil)
}
