package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	var created catalog.Product
	if err := c.do(ctx, http.MethodPost, "/products", p, &created); err != nil {
		return catalog.Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	var updated catalog.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), p, &updated); err != nil {
		return catalog.Product{}, err
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// UploadImage sends one image as a multipart form (field "image") and returns
// the URL the backend stored it under.
func (c *Client) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("upload image: read %q: %w", filename, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST /upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newStatusError(http.MethodPost, "/upload", resp)
	}

	var payload struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("POST /upload: decode response: %w", err)
	}
	return payload.ImageURL, nil
}

// VerifyAdminPassword asks the backend to check the admin password. It
// returns the session token on success and a StatusError with code 401 when
// the password is wrong.
func (c *Client) VerifyAdminPassword(ctx context.Context, password string) (string, error) {
	body := struct {
		Password string `json:"password"`
	}{Password: password}

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/verify-password", body, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &StatusError{Op: "POST /admin/verify-password", Code: http.StatusUnauthorized, Message: resp.Message}
	}
	return resp.Token, nil
}
