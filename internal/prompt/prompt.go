// Package prompt turns a catalog entry into the text prompt sent to the image
// generation tool.
package prompt

import (
	"fmt"

	"github.com/vk/plantgen/internal/catalog"
)

// FallbackDetail is used for categories without a dedicated clause.
const FallbackDetail = "plant"

// style is appended to every prompt.
const style = "scientific field guide style, detailed realistic drawing, " +
	"white background, natural colors, high detail, educational illustration, " +
	"clean professional botanical art"

var categoryDetails = map[catalog.Category]string{
	catalog.CategoryTree:  "full tree with trunk, branches, and characteristic leaves",
	catalog.CategoryShrub: "shrub showing stems, leaves, and any flowers or berries",
	catalog.CategoryHerb:  "flowering plant with leaves, stems, and distinctive flowers",
	catalog.CategoryGrass: "grass or sedge showing stems, leaves, and seed heads",
	catalog.CategoryFern:  "fern showing fronds and characteristic leaf pattern",
	catalog.CategoryVine:  "climbing vine with leaves, tendrils, and any flowers",
}

// Detail returns the descriptive clause for a category.
func Detail(c catalog.Category) string {
	if d, ok := categoryDetails[c]; ok {
		return d
	}
	return FallbackDetail
}

// Build returns the botanical illustration prompt for p.
func Build(p catalog.Plant) string {
	return fmt.Sprintf("Botanical illustration of %s (%s), %s, %s", p.Name, p.Scientific, Detail(p.Category), style)
}
