package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/menuconfig"
)

func mustConfig(t *testing.T, fileName, doc string) *menuconfig.Config {
	t.Helper()
	section, err := menuconfig.ParseYAML([]byte(doc))
	require.NoError(t, err)
	return &menuconfig.Config{Section: section, SourceFile: "menus/" + fileName}
}

func load(t *testing.T, doc string) (menu.LoadedMenu, *errcollect.Collector) {
	t.Helper()
	c := errcollect.New()
	return LoadMenu(mustConfig(t, "shop.yml", doc), c), c
}

const settings3Rows = `
menu-settings:
  name: '&aShop'
  rows: 3
`

func TestLoadMenu_WellFormedRoundTrip(t *testing.T) {
	var b strings.Builder
	b.WriteString(settings3Rows)
	n := 0
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 9; x += 2 {
			fmt.Fprintf(&b, "icon-%d-%d:\n  POSITION-X: %d\n  POSITION-Y: %d\n  MATERIAL: stone\n", x, y, x, y)
			n++
		}
	}

	loaded, c := load(t, b.String())

	assert.Zero(t, c.Len(), "%v", c.Entries())
	assert.Equal(t, n, loaded.Menu.IconCount())
	assert.Equal(t, "shop.yml", loaded.FileName)
	assert.Equal(t, "§aShop", loaded.Menu.Title())
	assert.Equal(t, 3, loaded.Menu.RowCount())
	assert.Equal(t, 9, loaded.Menu.ColumnCount())

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 9; x++ {
			icon := loaded.Menu.GetIcon(y-1, x-1)
			if x%2 == 1 {
				require.NotNil(t, icon, "x=%d y=%d", x, y)
				assert.Equal(t, material.Material("STONE"), icon.Material)
			} else {
				assert.Nil(t, icon)
			}
		}
	}
}

func TestLoadMenu_OverriddenIconKeepsSecond(t *testing.T) {
	loaded, c := load(t, settings3Rows+`
first:
  POSITION-X: 2
  POSITION-Y: 2
  MATERIAL: stone
second:
  POSITION-X: 2
  POSITION-Y: 2
  MATERIAL: diamond
`)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, errcollect.SeverityWarning, entries[0].Severity)
	assert.ErrorIs(t, entries[0].Cause, domain.ErrOverriddenIcon)
	assert.Contains(t, entries[0].Message, `"second"`)
	assert.False(t, c.HasErrors())

	assert.Equal(t, material.Material("DIAMOND"), loaded.Menu.GetIcon(1, 1).Material)
}

func TestLoadMenu_MissingPositionDropsIcon(t *testing.T) {
	for _, missing := range []string{"POSITION-X", "POSITION-Y"} {
		t.Run(missing, func(t *testing.T) {
			icon := "  POSITION-X: 4\n  POSITION-Y: 1\n  MATERIAL: stone\n"
			icon = strings.Replace(icon, "  "+missing+": ", "  UNUSED-"+missing+": ", 1)

			loaded, c := load(t, settings3Rows+"broken:\n"+icon+`
fine:
  POSITION-X: 1
  POSITION-Y: 1
  MATERIAL: dirt
`)

			entries := c.Entries()
			require.Len(t, entries, 1)
			assert.ErrorIs(t, entries[0].Cause, domain.ErrMissingIconAttribute)
			assert.Contains(t, entries[0].Message, missing)

			assert.Equal(t, 1, loaded.Menu.IconCount())
			assert.NotNil(t, loaded.Menu.GetIcon(0, 0))
		})
	}

	t.Run("both missing reports once", func(t *testing.T) {
		loaded, c := load(t, settings3Rows+"nowhere:\n  MATERIAL: stone\n")
		assert.Equal(t, 1, c.Len())
		assert.Zero(t, loaded.Menu.IconCount())
	})
}

func TestLoadMenu_PositionOutsideGrid(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantKey string
		wantMax string
	}{
		{"column too large", 10, 1, KeyPositionX, "between 1 and 9"},
		{"row too large", 1, 4, KeyPositionY, "between 1 and 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, c := load(t, settings3Rows+fmt.Sprintf("far:\n  POSITION-X: %d\n  POSITION-Y: %d\n  MATERIAL: stone\n", tt.x, tt.y))

			entries := c.Entries()
			require.Len(t, entries, 1)
			assert.ErrorIs(t, entries[0].Cause, domain.ErrIconPositionOutOfGrid)
			assert.Contains(t, entries[0].Message, tt.wantKey)
			assert.Contains(t, entries[0].Message, tt.wantMax)
			assert.Zero(t, loaded.Menu.IconCount())
		})
	}
}

func TestLoadMenu_InvalidPositionReportedOnce(t *testing.T) {
	loaded, c := load(t, settings3Rows+"bad:\n  POSITION-X: zero\n  POSITION-Y: 0\n  MATERIAL: stone\n")

	entries := c.Entries()
	require.Len(t, entries, 2, "one invalid-attribute error per bad position")
	assert.ErrorIs(t, entries[0].Cause, domain.ErrInvalidNumber)
	assert.ErrorIs(t, entries[1].Cause, domain.ErrNotPositive)
	assert.Zero(t, loaded.Menu.IconCount())
}

func TestLoadMenu_MissingMaterialStillPlaced(t *testing.T) {
	loaded, c := load(t, settings3Rows+"blank:\n  POSITION-X: 5\n  POSITION-Y: 2\n  NAME: '&cBroken'\n")

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Cause, domain.ErrMissingIconAttribute)
	assert.Contains(t, entries[0].Message, KeyMaterial)

	icon := loaded.Menu.GetIcon(1, 4)
	require.NotNil(t, icon)
	assert.False(t, icon.HasMaterial())
	assert.Equal(t, "§cBroken", icon.Name)
}

func TestLoadMenu_IconAttributes(t *testing.T) {
	loaded, c := load(t, settings3Rows+`
full:
  position-x: 3
  position-y: 1
  material: 'white_wool:14'
  durability: 5
  amount: 16
  name: '&6Gold'
  lore:
    - '&7line one'
    - line two
  actions: 'spawn; tell: &aHi {player}; bogus: x'
  permission: shop.gold
  permission-message: '&cNo gold for you'
  keep-open: true
`)

	entries := c.Entries()
	require.Len(t, entries, 1, "%v", entries)

	icon := loaded.Menu.GetIcon(0, 2)
	require.NotNil(t, icon)
	assert.Equal(t, 5, icon.Durability, "DURABILITY overrides the material suffix")
	assert.Equal(t, 16, icon.Amount)
	assert.Equal(t, "§6Gold", icon.Name)
	assert.Equal(t, []string{"§7line one", "line two"}, icon.Lore)
	assert.Equal(t, "shop.gold", icon.Permission)
	assert.Equal(t, "§cNo gold for you", icon.PermissionMessage)
	assert.True(t, icon.KeepOpen)

	require.Len(t, icon.Actions, 3, "the bad line becomes a disabled action")
	assert.Equal(t, action.KindPlayerCommand, icon.Actions[0].Kind())
	assert.Equal(t, action.KindTell, icon.Actions[1].Kind())
	assert.Equal(t, action.KindDisabled, icon.Actions[2].Kind())
}

func TestLoadMenu_NonSectionTopLevelValue(t *testing.T) {
	loaded, c := load(t, settings3Rows+"stray: 5\n")
	require.Equal(t, 1, c.Len())
	assert.Contains(t, c.Entries()[0].Message, `"stray"`)
	assert.Zero(t, loaded.Menu.IconCount())
}

func TestLoadMenu_EmptyIconBodyReportsMissingPosition(t *testing.T) {
	loaded, c := load(t, settings3Rows+"broken:\nok:\n  position-x: 1\n  position-y: 1\n  material: stone\n")

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Cause, domain.ErrMissingIconAttribute)
	assert.Contains(t, entries[0].Message, `"broken"`)
	assert.Contains(t, entries[0].Message, KeyPositionX)
	assert.Equal(t, 1, loaded.Menu.IconCount())
}

func TestLoadMenu_SettingsKeyIsCaseInsensitive(t *testing.T) {
	loaded, c := load(t, "MENU-SETTINGS:\n  NAME: Hub\n  ROWS: 1\n")
	assert.Zero(t, c.Len())
	assert.Equal(t, "Hub", loaded.Menu.Title())
}

func TestLoadMenu_AttachesSettings(t *testing.T) {
	loaded, c := load(t, `
menu-settings:
  name: Hub
  rows: 2
  commands: 'hub; /lobby'
  auto-refresh: 1.5
  open-actions:
    - 'sound: ui_button_click'
    - 'tell: &eWelcome'
  open-with-item:
    material: compass
    right-click: true
`)

	assert.Zero(t, c.Len(), "%v", c.Entries())
	assert.Equal(t, []string{"hub", "lobby"}, loaded.Commands)
	assert.Equal(t, 30, loaded.Menu.RefreshTicks())
	assert.Len(t, loaded.Menu.OpenActions(), 2)
	require.NotNil(t, loaded.OpenItem)
	assert.Equal(t, menu.ClickRight, loaded.OpenItem.Click)
	assert.True(t, loaded.OpenItem.AnyDurability)
	assert.Equal(t, "chestmenus.open.shop.yml", loaded.Menu.OpenPermission())
}

func TestLoadMenu_MissingSettingsSection(t *testing.T) {
	loaded, c := load(t, "icon:\n  POSITION-X: 1\n  POSITION-Y: 6\n  MATERIAL: stone\n")

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.ErrorIs(t, entries[0].Cause, domain.ErrMissingSection)

	assert.Equal(t, "§4No name set", loaded.Menu.Title())
	assert.Equal(t, DefaultRows, loaded.Menu.RowCount())
	assert.NotNil(t, loaded.Menu.GetIcon(5, 0))
	assert.Nil(t, loaded.OpenItem)
	assert.Empty(t, loaded.Commands)
}

func TestLoadMenu_HugeRowCountFallsBack(t *testing.T) {
	loaded, c := load(t, "menu-settings:\n  name: x\n  rows: 9223372036854775807\nicon:\n  POSITION-X: 1\n  POSITION-Y: 6\n  MATERIAL: stone\n")

	require.Equal(t, 1, c.Len())
	assert.ErrorIs(t, c.Entries()[0].Cause, domain.ErrInvalidValue)
	assert.Equal(t, DefaultRows, loaded.Menu.RowCount())
	assert.NotNil(t, loaded.Menu.GetIcon(5, 0))
}
