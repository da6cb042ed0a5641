package shop

// Inventory tracks owned wallpapers and which one is active. The
// default wallpaper is always owned. Owned preserves purchase order
// because the snapshot stores it as an ordered list.
type Inventory struct {
	Owned   []string
	Current string
}

// NewInventory returns an inventory owning only the default wallpaper
func NewInventory() Inventory {
	return Inventory{
		Owned:   []string{DefaultWallpaper},
		Current: DefaultWallpaper,
	}
}

// Restore rebuilds an inventory from persisted state, repairing it if
// the snapshot is missing the default or activates something unowned.
func Restore(owned []string, current string) Inventory {
	inv := Inventory{Owned: owned, Current: current}
	if !inv.Owns(DefaultWallpaper) {
		inv.Owned = append([]string{DefaultWallpaper}, inv.Owned...)
	}
	if !inv.Owns(inv.Current) {
		inv.Current = DefaultWallpaper
	}
	return inv
}

// Owns returns true if the wallpaper is in the owned set
func (i Inventory) Owns(id string) bool {
	for _, owned := range i.Owned {
		if owned == id {
			return true
		}
	}
	return false
}

// Add puts a wallpaper into the owned set and makes it active. Adding
// an already-owned wallpaper is a no-op beyond activation.
func (i *Inventory) Add(id string) {
	if !i.Owns(id) {
		i.Owned = append(i.Owned, id)
	}
	i.Current = id
}

// Select activates an owned wallpaper. Returns false and leaves Current
// unchanged when the wallpaper is not owned.
func (i *Inventory) Select(id string) bool {
	if !i.Owns(id) {
		return false
	}
	i.Current = id
	return true
}
