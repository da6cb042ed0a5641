package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasFreeDefault(t *testing.T) {
	item, ok := ItemByID(DefaultWallpaper)
	require.True(t, ok)
	assert.Equal(t, 0, item.Price)
}

func TestItemByIDUnknown(t *testing.T) {
	_, ok := ItemByID("neon")
	assert.False(t, ok)
}

func TestDisplayNameIndependentOfID(t *testing.T) {
	item, ok := ItemByID("marble")
	require.True(t, ok)
	assert.Equal(t, "Flower", item.Name)
}

func TestNewInventoryOwnsDefault(t *testing.T) {
	inv := NewInventory()
	assert.True(t, inv.Owns(DefaultWallpaper))
	assert.Equal(t, DefaultWallpaper, inv.Current)
}

func TestAddThenSelect(t *testing.T) {
	inv := NewInventory()
	inv.Add("wood")

	assert.True(t, inv.Owns("wood"))
	assert.Equal(t, "wood", inv.Current)

	assert.True(t, inv.Select(DefaultWallpaper))
	assert.Equal(t, DefaultWallpaper, inv.Current)
}

func TestSelectUnownedLeavesCurrent(t *testing.T) {
	inv := NewInventory()
	assert.False(t, inv.Select("marble"))
	assert.Equal(t, DefaultWallpaper, inv.Current)
}

func TestAddOwnedDoesNotDuplicate(t *testing.T) {
	inv := NewInventory()
	inv.Add("wood")
	inv.Add("wood")
	assert.Equal(t, []string{DefaultWallpaper, "wood"}, inv.Owned)
}

func TestRestoreRepairsSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		owned       []string
		current     string
		wantOwned   []string
		wantCurrent string
	}{
		{
			name:        "valid snapshot",
			owned:       []string{"default", "wood"},
			current:     "wood",
			wantOwned:   []string{"default", "wood"},
			wantCurrent: "wood",
		},
		{
			name:        "missing default",
			owned:       []string{"wood"},
			current:     "wood",
			wantOwned:   []string{"default", "wood"},
			wantCurrent: "wood",
		},
		{
			name:        "unowned current",
			owned:       []string{"default"},
			current:     "marble",
			wantOwned:   []string{"default"},
			wantCurrent: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Restore(tt.owned, tt.current)
			assert.Equal(t, tt.wantOwned, inv.Owned)
			assert.Equal(t, tt.wantCurrent, inv.Current)
		})
	}
}
