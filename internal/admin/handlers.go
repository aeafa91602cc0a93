package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alseiny20/bkbweb-go/internal/api"
	"github.com/alseiny20/bkbweb-go/internal/catalog"
)

// maxUploadBytes bounds product image uploads (the backend re-validates).
const maxUploadBytes = 10 << 20

func (p *Panel) loginForm(w http.ResponseWriter, r *http.Request) {
	if p.session.Authenticated() {
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	p.render(w, "login.html", map[string]string{})
}

func (p *Panel) login(w http.ResponseWriter, r *http.Request) {
	if err := p.session.Login(r.Context(), r.FormValue("password")); err != nil {
		message := "erreur de connexion au serveur"
		if errors.Is(err, ErrInvalidPassword) {
			message = ErrInvalidPassword.Error()
		}
		w.WriteHeader(http.StatusUnauthorized)
		p.render(w, "login.html", map[string]string{"Error": message})
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (p *Panel) logout(w http.ResponseWriter, r *http.Request) {
	if err := p.session.Logout(); err != nil {
		p.renderError(w, "déconnexion impossible", err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (p *Panel) orders(w http.ResponseWriter, r *http.Request) {
	orders, err := p.backend.ListOrders(r.Context())
	if err != nil {
		p.renderError(w, "impossible de charger les commandes", err)
		return
	}
	p.render(w, "orders.html", map[string]any{
		"Orders":   orders,
		"Statuses": api.OrderStatuses,
	})
}

func (p *Panel) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	status := api.OrderStatus(r.FormValue("status"))
	if _, err := p.backend.UpdateOrderStatus(r.Context(), id, status); err != nil {
		p.renderError(w, "mise à jour du statut impossible", err)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (p *Panel) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	if err := p.backend.DeleteOrder(r.Context(), id); err != nil {
		p.renderError(w, "suppression de la commande impossible", err)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (p *Panel) products(w http.ResponseWriter, r *http.Request) {
	products, err := p.backend.ListProducts(r.Context())
	if err != nil {
		p.renderError(w, "impossible de charger les produits", err)
		return
	}
	p.render(w, "products.html", map[string]any{"Products": products})
}

func (p *Panel) productForm(w http.ResponseWriter, r *http.Request) {
	var product catalog.Product
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}
		product, err = p.backend.GetProduct(r.Context(), id)
		if err != nil {
			p.renderError(w, "impossible de charger le produit", err)
			return
		}
	}
	p.render(w, "product_form.html", map[string]any{"Product": product})
}

// saveProduct handles both create (id 0) and update. When the form carries an
// image file it is uploaded first and the returned URL replaces the product's
// image.
func (p *Panel) saveProduct(w http.ResponseWriter, r *http.Request) {
	// The form is multipart only when an image file is attached.
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	product, err := productFromForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err := p.backend.UploadImage(r.Context(), header.Filename, file)
		if err != nil {
			p.renderError(w, "envoi de l'image impossible", err)
			return
		}
		product.Image = imageURL
	}

	if product.ID == 0 {
		_, err = p.backend.CreateProduct(r.Context(), product)
	} else {
		_, err = p.backend.UpdateProduct(r.Context(), product)
	}
	if err != nil {
		p.renderError(w, "enregistrement du produit impossible", err)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (p *Panel) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := p.backend.DeleteProduct(r.Context(), id); err != nil {
		p.renderError(w, "suppression du produit impossible", err)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func productFromForm(r *http.Request) (catalog.Product, error) {
	var product catalog.Product

	if raw := r.FormValue("id"); raw != "" && raw != "0" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Product{}, errors.New("invalid product id")
		}
		product.ID = id
	}

	product.Name = r.FormValue("name")
	if product.Name == "" {
		return catalog.Product{}, errors.New("name is required")
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		return catalog.Product{}, errors.New("invalid price")
	}
	product.Price = price

	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil || stock < 0 {
		return catalog.Product{}, errors.New("invalid stock")
	}
	product.Stock = stock

	categoryID, err := strconv.Atoi(r.FormValue("categoryId"))
	if err != nil {
		return catalog.Product{}, errors.New("invalid category")
	}
	product.CategoryID = categoryID

	product.Description = r.FormValue("description")
	product.Image = r.FormValue("existingImage")
	return product, nil
}
