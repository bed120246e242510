package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/menu"
)

func loadSettings(t *testing.T, body string) (MenuSettings, *errcollect.Collector) {
	t.Helper()
	c := errcollect.New()
	cfg := mustConfig(t, "s.yml", "menu-settings:\n"+body)
	return LoadMenuSettings(cfg, c), c
}

func TestMenuSettings_AutoRefresh(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantTicks int
		wantErr   bool
	}{
		{"decimal seconds", "1.5", 30, false},
		{"tiny floors to one tick", "0.01", 1, false},
		{"whole seconds", "2", 40, false},
		{"quoted number", "'0.5'", 10, false},
		{"not a number", "soon", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := loadSettings(t, "  name: x\n  rows: 1\n  auto-refresh: "+tt.value+"\n")
			assert.Equal(t, tt.wantTicks, s.RefreshTicks)
			assert.Equal(t, tt.wantErr, c.HasErrors(), "%v", c.Entries())
		})
	}

	t.Run("absent disables refresh", func(t *testing.T) {
		s, c := loadSettings(t, "  name: x\n  rows: 1\n")
		assert.Zero(t, s.RefreshTicks)
		assert.Zero(t, c.Len())
	})
}

func TestRefreshTicks(t *testing.T) {
	assert.Equal(t, 30, RefreshTicks(1.5))
	assert.Equal(t, 1, RefreshTicks(0.01))
	assert.Equal(t, 1, RefreshTicks(0.05))
	assert.Equal(t, 3, RefreshTicks(0.125))
}

func TestMenuSettings_Rows(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"valid", "rows: 4", 4, false},
		{"zero becomes one", "rows: 0", 1, false},
		{"negative becomes one", "rows: -2", 1, false},
		{"largest chest", "rows: 6", 6, false},
		{"too many", "rows: 7", DefaultRows, true},
		{"int64 max", "rows: 9223372036854775807", DefaultRows, true},
		{"beyond int64", "rows: 99999999999999999999", DefaultRows, true},
		{"not a number", "rows: many", DefaultRows, true},
		{"missing", "other: 1", DefaultRows, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := loadSettings(t, "  name: x\n  "+tt.value+"\n")
			assert.Equal(t, tt.want, s.Rows)
			assert.Equal(t, tt.wantErr, c.HasErrors())
			if tt.wantErr {
				assert.Contains(t, c.Entries()[0].Message, `"rows"`)
			}
		})
	}
}

func TestMenuSettings_Title(t *testing.T) {
	t.Run("missing uses the fallback", func(t *testing.T) {
		s, c := loadSettings(t, "  rows: 1\n")
		assert.Equal(t, "§4No name set", s.Title)
		require.Equal(t, 1, c.Len())
		assert.ErrorIs(t, c.Entries()[0].Cause, domain.ErrMissingValue)
	})

	t.Run("truncated after colour expansion", func(t *testing.T) {
		long := strings.Repeat("é", 40)
		s, c := loadSettings(t, "  rows: 1\n  name: '&a"+long+"'\n")
		assert.Zero(t, c.Len())
		assert.Equal(t, MaxTitleLength, len([]rune(s.Title)))
		assert.True(t, strings.HasPrefix(s.Title, "§a"))
	})
}

func TestMenuSettings_Commands(t *testing.T) {
	s, _ := loadSettings(t, "  name: x\n  rows: 1\n  commands:\n    - shop\n    - ' '\n    - /store\n")
	assert.Equal(t, []string{"shop", "store"}, s.Commands)

	s, _ = loadSettings(t, "  name: x\n  rows: 1\n")
	assert.Empty(t, s.Commands)
}

func TestMenuSettings_OpenActionsKeepOrder(t *testing.T) {
	s, c := loadSettings(t, `  name: x
  rows: 1
  open-actions:
    - 'tell: one'
    - 'sound: not_a_sound'
    - 'give: stone, 0'
    - 'console: say {player}'
`)

	require.Len(t, s.OpenActions, 4)
	assert.Equal(t, action.KindTell, s.OpenActions[0].Kind())
	assert.Equal(t, action.KindDisabled, s.OpenActions[1].Kind())
	assert.Equal(t, action.KindDisabled, s.OpenActions[2].Kind())
	assert.Equal(t, action.KindConsoleCommand, s.OpenActions[3].Kind())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "sound: not_a_sound")
	assert.ErrorIs(t, entries[0].Cause, domain.ErrUnknownSound)
	assert.ErrorIs(t, entries[1].Cause, domain.ErrInvalidAction)

	p := domain.NewFakePlayer("robin")
	s.OpenActions[1].Execute(action.Context{Player: p})
	require.Len(t, p.Messages, 1)
	assert.Contains(t, p.Messages[0], "configuration error")
}

func TestMenuSettings_OpenItem(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		wantClick menu.ClickType
		wantErr   error
	}{
		{"left only", "material: compass\n    left-click: true", menu.ClickLeft, nil},
		{"both", "material: compass\n    left-click: true\n    right-click: true", menu.ClickBoth, nil},
		{"no click", "material: compass", 0, domain.ErrInvalidValue},
		{"air", "material: air\n    left-click: true", 0, domain.ErrAirNotAllowed},
		{"unknown material", "material: unobtainium\n    left-click: true", 0, domain.ErrUnknownMaterial},
		{"missing material", "left-click: true", 0, domain.ErrMissingValue},
		{"bad durability", "material: 'compass:x'\n    left-click: true", 0, domain.ErrInvalidDurability},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := loadSettings(t, "  name: x\n  rows: 2\n  open-with-item:\n    "+tt.block+"\n")

			assert.Equal(t, 2, s.Rows, "other settings are unaffected")
			if tt.wantErr != nil {
				assert.Nil(t, s.OpenItem)
				require.Equal(t, 1, c.Len())
				assert.ErrorIs(t, c.Entries()[0].Cause, tt.wantErr)
				return
			}
			require.NotNil(t, s.OpenItem)
			assert.Zero(t, c.Len())
			assert.Equal(t, tt.wantClick, s.OpenItem.Click)
		})
	}

	t.Run("explicit durability restricts matching", func(t *testing.T) {
		s, _ := loadSettings(t, "  name: x\n  rows: 1\n  open-with-item:\n    material: 'compass:2'\n    right-click: true\n")
		require.NotNil(t, s.OpenItem)
		assert.False(t, s.OpenItem.AnyDurability)
		assert.True(t, s.OpenItem.Matches(domain.HeldItem{Material: "compass", Durability: 2}, domain.RightClickAir))
		assert.False(t, s.OpenItem.Matches(domain.HeldItem{Material: "compass"}, domain.RightClickAir))
	})

	t.Run("not a section", func(t *testing.T) {
		s, c := loadSettings(t, "  name: x\n  rows: 1\n  open-with-item: compass\n")
		assert.Nil(t, s.OpenItem)
		assert.Equal(t, 1, c.Len())
	})
}
