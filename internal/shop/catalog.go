// Package shop holds the cosmetic wallpaper catalog and the player's
// inventory. Wallpapers change the table's look and nothing else.
package shop

// DefaultWallpaper is the free wallpaper every inventory starts with
const DefaultWallpaper = "default"

// Item is a purchasable wallpaper. ID is the persisted identifier; Name
// is the label shown in the shop and the two are deliberately
// independent.
type Item struct {
	ID    string
	Name  string
	Price int
}

// catalog is the fixed set of wallpapers, in display order
var catalog = []Item{
	{ID: DefaultWallpaper, Name: "Default", Price: 0},
	{ID: "wood", Name: "Wood", Price: 500},
	{ID: "marble", Name: "Flower", Price: 1000},
}

// Catalog returns all wallpapers in display order
func Catalog() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

// ItemByID looks up a wallpaper by its identifier
func ItemByID(id string) (Item, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
