package catalog

import "math/rand"

// featuredPerCategory is how many products of each landing category make the
// featured strip.
const featuredPerCategory = 3

// Featured picks the first products of each landing category, in the order
// the backend returned them. Categories with fewer matches contribute fewer
// entries; there is no padding.
func Featured(products []Product) []Product {
	var featured []Product
	for _, categoryID := range []int{CategoryPhones, CategoryElectronic, CategoryAppliances} {
		n := 0
		for _, p := range products {
			if p.CategoryID != categoryID {
				continue
			}
			featured = append(featured, p)
			if n++; n == featuredPerCategory {
				break
			}
		}
	}
	return featured
}

// Carousel returns up to target products of one category that have an image,
// in random order. When the category has at least one match but fewer than
// target, the matches repeat from the start until the carousel is full, so
// short categories still loop smoothly.
func Carousel(products []Product, categoryID, target int) []Product {
	var matched []Product
	for _, p := range products {
		if p.CategoryID == categoryID && p.Image != "" {
			matched = append(matched, p)
		}
	}

	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if len(matched) >= target {
		return matched[:target]
	}
	if len(matched) == 0 {
		return nil
	}

	out := make([]Product, 0, target)
	out = append(out, matched...)
	for len(out) < target {
		out = append(out, matched[:min(target-len(out), len(matched))]...)
	}
	return out
}

// Similar returns up to limit products sharing ref's category, excluding ref
// itself and anything without an image. Input order is preserved.
func Similar(products []Product, ref Product, limit int) []Product {
	var similar []Product
	for _, p := range products {
		if p.CategoryID != ref.CategoryID || p.ID == ref.ID || p.Image == "" {
			continue
		}
		similar = append(similar, p)
		if len(similar) == limit {
			break
		}
	}
	return similar
}
