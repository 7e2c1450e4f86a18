package catalog

// defaultPlants is the built-in Virginia wetland catalog.
var defaultPlants = Catalog{
	{ID: "red-maple", Name: "Red Maple", Scientific: "Acer rubrum", Category: CategoryTree},
	{ID: "tulip-poplar", Name: "Tulip Poplar", Scientific: "Liriodendron tulipifera", Category: CategoryTree},
	{ID: "sweetgum", Name: "Sweetgum", Scientific: "Liquidambar styraciflua", Category: CategoryTree},
	{ID: "bald-cypress", Name: "Bald Cypress", Scientific: "Taxodium distichum", Category: CategoryTree},
	{ID: "river-birch", Name: "River Birch", Scientific: "Betula nigra", Category: CategoryTree},
	{ID: "willow-oak", Name: "Willow Oak", Scientific: "Quercus phellos", Category: CategoryTree},
	{ID: "green-ash", Name: "Green Ash", Scientific: "Fraxinus pennsylvanica", Category: CategoryTree},
	{ID: "sycamore", Name: "American Sycamore", Scientific: "Platanus occidentalis", Category: CategoryTree},
	{ID: "black-gum", Name: "Black Gum / Tupelo", Scientific: "Nyssa sylvatica", Category: CategoryTree},
	{ID: "swamp-white-oak", Name: "Swamp White Oak", Scientific: "Quercus bicolor", Category: CategoryTree},
	{ID: "buttonbush", Name: "Buttonbush", Scientific: "Cephalanthus occidentalis", Category: CategoryShrub},
	{ID: "silky-dogwood", Name: "Silky Dogwood", Scientific: "Cornus amomum", Category: CategoryShrub},
	{ID: "spicebush", Name: "Spicebush", Scientific: "Lindera benzoin", Category: CategoryShrub},
	{ID: "elderberry", Name: "American Elderberry", Scientific: "Sambucus nigra ssp. canadensis", Category: CategoryShrub},
	{ID: "highbush-blueberry", Name: "Highbush Blueberry", Scientific: "Vaccinium corymbosum", Category: CategoryShrub},
	{ID: "winterberry", Name: "Winterberry Holly", Scientific: "Ilex verticillata", Category: CategoryShrub},
	{ID: "swamp-rose", Name: "Swamp Rose", Scientific: "Rosa palustris", Category: CategoryShrub},
	{ID: "cardinal-flower", Name: "Cardinal Flower", Scientific: "Lobelia cardinalis", Category: CategoryHerb},
	{ID: "blue-flag-iris", Name: "Blue Flag Iris", Scientific: "Iris versicolor", Category: CategoryHerb},
	{ID: "joe-pye-weed", Name: "Joe-Pye Weed", Scientific: "Eutrochium purpureum", Category: CategoryHerb},
	{ID: "boneset", Name: "Boneset", Scientific: "Eupatorium perfoliatum", Category: CategoryHerb},
	{ID: "swamp-milkweed", Name: "Swamp Milkweed", Scientific: "Asclepias incarnata", Category: CategoryHerb},
	{ID: "skunk-cabbage", Name: "Skunk Cabbage", Scientific: "Symplocarpus foetidus", Category: CategoryHerb},
	{ID: "pickerelweed", Name: "Pickerelweed", Scientific: "Pontederia cordata", Category: CategoryHerb},
	{ID: "arrow-arum", Name: "Arrow Arum", Scientific: "Peltandra virginica", Category: CategoryHerb},
	{ID: "lizards-tail", Name: "Lizard's Tail", Scientific: "Saururus cernuus", Category: CategoryHerb},
	{ID: "jewelweed", Name: "Jewelweed / Touch-me-not", Scientific: "Impatiens capensis", Category: CategoryHerb},
	{ID: "soft-rush", Name: "Soft Rush", Scientific: "Juncus effusus", Category: CategoryGrass},
	{ID: "woolgrass", Name: "Woolgrass", Scientific: "Scirpus cyperinus", Category: CategoryGrass},
	{ID: "switchgrass", Name: "Switchgrass", Scientific: "Panicum virgatum", Category: CategoryGrass},
	{ID: "sedge-carex", Name: "Tussock Sedge", Scientific: "Carex stricta", Category: CategoryGrass},
	{ID: "cinnamon-fern", Name: "Cinnamon Fern", Scientific: "Osmundastrum cinnamomeum", Category: CategoryFern},
	{ID: "royal-fern", Name: "Royal Fern", Scientific: "Osmunda regalis", Category: CategoryFern},
	{ID: "sensitive-fern", Name: "Sensitive Fern", Scientific: "Onoclea sensibilis", Category: CategoryFern},
	{ID: "virginia-creeper", Name: "Virginia Creeper", Scientific: "Parthenocissus quinquefolia", Category: CategoryVine},
	{ID: "trumpet-creeper", Name: "Trumpet Creeper", Scientific: "Campsis radicans", Category: CategoryVine},
}

// Default returns a copy of the built-in catalog.
func Default() Catalog {
	out := make(Catalog, len(defaultPlants))
	copy(out, defaultPlants)
	return out
}
