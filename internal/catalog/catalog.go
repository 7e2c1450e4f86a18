// Package catalog defines the plant records that drive a generation run and
// the built-in wetland species catalog.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Category is the growth form of a plant. It selects the descriptive clause
// used in the generation prompt.
type Category string

const (
	CategoryTree  Category = "tree"
	CategoryShrub Category = "shrub"
	CategoryHerb  Category = "herb"
	CategoryGrass Category = "grass"
	CategoryFern  Category = "fern"
	CategoryVine  Category = "vine"
)

// Categories lists the known categories in their canonical display order.
var Categories = []Category{
	CategoryTree,
	CategoryShrub,
	CategoryHerb,
	CategoryGrass,
	CategoryFern,
	CategoryVine,
}

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// IsKnown reports whether c is one of the fixed categories.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Rank returns the position of c in Categories, or len(Categories) for an
// unknown category so that those sort last.
func (c Category) Rank() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return len(Categories)
}

// Plant is a single catalog entry. ID doubles as the image filename stem and
// the key in the image mapping.
type Plant struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Scientific string   `yaml:"scientific"`
	Category   Category `yaml:"category"`
}

// Catalog is an ordered list of plants. Order only affects progress output
// and the key order of the mapping file.
type Catalog []Plant

// ErrEmpty is returned by Validate for a catalog without entries.
var ErrEmpty = errors.New("catalog has no plants")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsSlug reports whether id is usable as an image file stem and mapping
// key: lowercase letters and digits in runs joined by single dashes.
func IsSlug(id string) bool {
	return slugPattern.MatchString(id)
}

// Validate checks that every plant has a slug id, a name and a scientific
// name, and that ids are unique.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]int, len(c))
	var errs []error
	for i, p := range c {
		switch {
		case strings.TrimSpace(p.ID) == "":
			errs = append(errs, fmt.Errorf("plant #%d: id is required", i+1))
			continue
		case !IsSlug(p.ID):
			errs = append(errs, fmt.Errorf("plant %q: id must be a lowercase slug of letters, digits and single dashes", p.ID))
			continue
		case strings.TrimSpace(p.Name) == "":
			errs = append(errs, fmt.Errorf("plant %q: name is required", p.ID))
		case strings.TrimSpace(p.Scientific) == "":
			errs = append(errs, fmt.Errorf("plant %q: scientific name is required", p.ID))
		}
		if prev, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("plant %q: duplicate id (first defined as plant #%d)", p.ID, prev+1))
			continue
		}
		seen[p.ID] = i
	}
	return errors.Join(errs...)
}

// UnknownCategories returns the ids of plants whose category is not one of
// the fixed categories.
func (c Catalog) UnknownCategories() []string {
	var ids []string
	for _, p := range c {
		if !p.Category.IsKnown() {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
