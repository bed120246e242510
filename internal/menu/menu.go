// Package menu holds the loaded menu model and the registry that indexes
// menus by file name, open command and open item.
package menu

import (
	"strings"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/utils"
)

// Menu is a titled grid of icons, Columns wide, with optional open actions
// and auto-refresh. It is built once by the parser and then only read.
type Menu struct {
	title          string
	rows           int
	icons          []*Icon
	refreshTicks   int
	openActions    []action.Action
	sourceFile     string
	openPermission string
}

// New creates an empty menu. rows is clamped to [1, MaxRows].
func New(title string, rows int, sourceFile string) *Menu {
	rows = max(1, min(rows, MaxRows))
	return &Menu{
		title:          title,
		rows:           rows,
		icons:          make([]*Icon, rows*Columns),
		sourceFile:     sourceFile,
		openPermission: DefaultOpenPermissionPrefix + sourceFile,
	}
}

func (m *Menu) Title() string      { return m.title }
func (m *Menu) RowCount() int      { return m.rows }
func (m *Menu) ColumnCount() int   { return Columns }
func (m *Menu) Size() int          { return len(m.icons) }
func (m *Menu) SourceFile() string { return m.sourceFile }

// RefreshTicks is the auto-refresh interval; 0 means disabled.
func (m *Menu) RefreshTicks() int { return m.refreshTicks }

// OpenPermission is the permission node required by OpenCheckingPermission.
func (m *Menu) OpenPermission() string { return m.openPermission }

// OpenActions returns the actions run before the menu is shown.
func (m *Menu) OpenActions() []action.Action {
	return m.openActions
}

func (m *Menu) inGrid(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < Columns
}

// GetIcon returns the icon at the zero-based row and column, or nil when the
// slot is empty or outside the grid.
func (m *Menu) GetIcon(row, col int) *Icon {
	if !m.inGrid(row, col) {
		return nil
	}
	return m.icons[row*Columns+col]
}

// IconAt resolves a raw inventory slot index.
func (m *Menu) IconAt(slot int) *Icon {
	if slot < 0 || slot >= len(m.icons) {
		return nil
	}
	return m.icons[slot]
}

// SetIcon places icon at the zero-based row and column and returns the icon
// it replaced. It reports false when the slot is outside the grid.
func (m *Menu) SetIcon(row, col int, icon *Icon) (*Icon, bool) {
	if !m.inGrid(row, col) {
		return nil, false
	}
	idx := row*Columns + col
	previous := m.icons[idx]
	m.icons[idx] = icon
	return previous, true
}

// IconCount returns the number of filled slots.
func (m *Menu) IconCount() int {
	n := 0
	for _, icon := range m.icons {
		if icon != nil {
			n++
		}
	}
	return n
}

// ForEachIcon calls fn for every filled slot in slot order.
func (m *Menu) ForEachIcon(fn func(row, col int, icon *Icon)) {
	for idx, icon := range m.icons {
		if icon != nil {
			fn(idx/Columns, idx%Columns, icon)
		}
	}
}

// SetRefreshTicks sets the auto-refresh interval; values below 1 disable it.
func (m *Menu) SetRefreshTicks(ticks int) {
	if ticks < 1 {
		ticks = 0
	}
	m.refreshTicks = ticks
}

func (m *Menu) SetOpenActions(actions []action.Action) {
	m.openActions = actions
}

func (m *Menu) SetOpenPermission(node string) {
	m.openPermission = node
}

// Open runs the open actions and shows the menu without checking permissions.
func (m *Menu) Open(ctx action.Context) {
	action.ExecuteAll(ctx, m.openActions)
	ctx.Player.OpenMenu(m)
}

// OpenCheckingPermission opens the menu when the player holds the open
// permission and tells them otherwise. It reports whether the menu opened.
func (m *Menu) OpenCheckingPermission(ctx action.Context) bool {
	if !ctx.Player.HasPermission(m.openPermission) {
		msg := strings.ReplaceAll(MsgNoOpenPermission, PermissionPlaceholder, m.openPermission)
		ctx.Player.SendMessage(utils.AddColors(msg))
		return false
	}
	m.Open(ctx)
	return true
}
