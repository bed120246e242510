package handler

import (
	"sort"

	"github.com/osse101/chestmenus/internal/menu"
)

// MenuSummary is one entry of the menu list.
type MenuSummary struct {
	File         string   `json:"file"`
	Title        string   `json:"title"`
	Rows         int      `json:"rows"`
	Icons        int      `json:"icons"`
	RefreshTicks int      `json:"refresh_ticks,omitempty"`
	Commands     []string `json:"commands,omitempty"`
}

// MenuDetail describes a menu and every placed icon.
type MenuDetail struct {
	MenuSummary
	Columns        int        `json:"columns"`
	OpenPermission string     `json:"open_permission"`
	OpenActions    []string   `json:"open_actions,omitempty"`
	Grid           []IconView `json:"grid"`
}

// IconView describes one icon. X and Y are 1-based like the menu files.
type IconView struct {
	X                 int      `json:"x"`
	Y                 int      `json:"y"`
	Slot              int      `json:"slot"`
	Material          string   `json:"material,omitempty"`
	Durability        int      `json:"durability,omitempty"`
	Amount            int      `json:"amount"`
	Name              string   `json:"name,omitempty"`
	Lore              []string `json:"lore,omitempty"`
	Actions           []string `json:"actions,omitempty"`
	Permission        string   `json:"permission,omitempty"`
	PermissionMessage string   `json:"permission_message,omitempty"`
	KeepOpen          bool     `json:"keep_open,omitempty"`
}

// CommandView tells which menu a command opens.
type CommandView struct {
	Command string `json:"command"`
	File    string `json:"file"`
}

// commandsByFile inverts the registry's command index.
func commandsByFile(commands map[string]string) map[string][]string {
	out := make(map[string][]string)
	for command, file := range commands {
		out[file] = append(out[file], command)
	}
	for _, list := range out {
		sort.Strings(list)
	}
	return out
}

func newMenuSummary(file string, m *menu.Menu, commands []string) MenuSummary {
	return MenuSummary{
		File:         file,
		Title:        m.Title(),
		Rows:         m.RowCount(),
		Icons:        m.IconCount(),
		RefreshTicks: m.RefreshTicks(),
		Commands:     commands,
	}
}

func newMenuDetail(file string, m *menu.Menu, commands []string) MenuDetail {
	detail := MenuDetail{
		MenuSummary:    newMenuSummary(file, m, commands),
		Columns:        m.ColumnCount(),
		OpenPermission: m.OpenPermission(),
		Grid:           []IconView{},
	}
	for _, a := range m.OpenActions() {
		detail.OpenActions = append(detail.OpenActions, a.Kind().String())
	}

	m.ForEachIcon(func(row, col int, icon *menu.Icon) {
		view := IconView{
			X:                 col + 1,
			Y:                 row + 1,
			Slot:              row*m.ColumnCount() + col,
			Material:          string(icon.Material),
			Durability:        icon.Durability,
			Amount:            icon.Amount,
			Name:              icon.Name,
			Lore:              icon.Lore,
			Permission:        icon.Permission,
			PermissionMessage: icon.PermissionMessage,
			KeepOpen:          icon.KeepOpen,
		}
		for _, a := range icon.Actions {
			view.Actions = append(view.Actions, a.Kind().String())
		}
		detail.Grid = append(detail.Grid, view)
	})
	return detail
}
