package catalog

import "testing"

func product(id, categoryID int, image string) Product {
	return Product{ID: id, Name: "p", CategoryID: categoryID, Image: image, Stock: 1}
}

func TestFeatured(t *testing.T) {
	tests := map[string]struct {
		products []Product
		wantIDs  []int
	}{
		"three of each": {
			products: []Product{
				product(1, CategoryPhones, ""), product(2, CategoryPhones, ""),
				product(3, CategoryPhones, ""), product(4, CategoryPhones, ""),
				product(5, CategoryElectronic, ""), product(6, CategoryElectronic, ""),
				product(7, CategoryElectronic, ""), product(8, CategoryAppliances, ""),
				product(9, CategoryAppliances, ""), product(10, CategoryAppliances, ""),
			},
			wantIDs: []int{1, 2, 3, 5, 6, 7, 8, 9, 10},
		},
		"short categories are not padded": {
			products: []Product{
				product(1, CategoryPhones, ""), product(2, CategoryPhones, ""),
				product(3, CategoryPhones, ""), product(4, CategoryPhones, ""),
				product(5, CategoryPhones, ""),
				product(6, CategoryElectronic, ""),
			},
			wantIDs: []int{1, 2, 3, 6},
		},
		"unknown categories ignored": {
			products: []Product{product(1, 99, ""), product(2, CategoryPhones, "")},
			wantIDs:  []int{2},
		},
		"empty input": {
			products: nil,
			wantIDs:  nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Featured(tc.products)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d products, got %d", len(tc.wantIDs), len(got))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestCarousel(t *testing.T) {
	t.Run("filters by category and image", func(t *testing.T) {
		products := []Product{
			product(1, CategoryPhones, "a.jpg"),
			product(2, CategoryPhones, ""), // no image, excluded
			product(3, CategoryElectronic, "b.jpg"),
		}
		got := Carousel(products, CategoryPhones, 5)
		for _, p := range got {
			if p.CategoryID != CategoryPhones || p.Image == "" {
				t.Fatalf("unexpected product in carousel: %+v", p)
			}
		}
	})

	t.Run("truncates to target", func(t *testing.T) {
		var products []Product
		for i := 1; i <= 20; i++ {
			products = append(products, product(i, CategoryPhones, "img.jpg"))
		}
		if got := Carousel(products, CategoryPhones, 10); len(got) != 10 {
			t.Fatalf("expected 10 products, got %d", len(got))
		}
	})

	t.Run("pads short categories by repeating", func(t *testing.T) {
		products := []Product{
			product(1, CategoryPhones, "a.jpg"),
			product(2, CategoryPhones, "b.jpg"),
			product(3, CategoryPhones, "c.jpg"),
		}
		got := Carousel(products, CategoryPhones, 10)
		if len(got) != 10 {
			t.Fatalf("expected 10 products, got %d", len(got))
		}
		// Padding repeats the shuffled prefix, so position i mirrors i%3.
		for i := 3; i < 10; i++ {
			if got[i].ID != got[i%3].ID {
				t.Errorf("position %d: expected repeat of position %d", i, i%3)
			}
		}
	})

	t.Run("no matches yields empty, not padded", func(t *testing.T) {
		products := []Product{product(1, CategoryElectronic, "a.jpg")}
		if got := Carousel(products, CategoryPhones, 10); len(got) != 0 {
			t.Fatalf("expected empty carousel, got %d products", len(got))
		}
	})
}

func TestSimilar(t *testing.T) {
	ref := product(1, CategoryPhones, "ref.jpg")
	products := []Product{
		ref,
		product(2, CategoryPhones, "a.jpg"),
		product(3, CategoryPhones, ""), // no image
		product(4, CategoryElectronic, "b.jpg"),
		product(5, CategoryPhones, "c.jpg"),
		product(6, CategoryPhones, "d.jpg"),
	}

	got := Similar(products, ref, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 5 {
		t.Fatalf("expected ids [2 5] in input order, got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestCategoryInfo(t *testing.T) {
	if info := CategoryInfo(CategoryPhones); info.Name != "Téléphones" {
		t.Errorf("unexpected phones info: %+v", info)
	}
	if info := CategoryInfo(42); info != defaultInfo {
		t.Errorf("expected default info for unknown id, got %+v", info)
	}
}
