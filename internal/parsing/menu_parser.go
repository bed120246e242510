package parsing

import (
	"fmt"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/menuconfig"
	"github.com/osse101/chestmenus/internal/utils"
)

// LoadMenu builds a menu from a parsed file. It never fails: every problem
// is reported to sink and the affected setting, binding or icon falls back
// or is dropped.
func LoadMenu(cfg *menuconfig.Config, sink errcollect.Sink) menu.LoadedMenu {
	file := cfg.FileName()
	settings := LoadMenuSettings(cfg, sink)

	m := menu.New(settings.Title, settings.Rows, file)
	settingsKey := utils.FoldKey(SettingsSection)

	for _, name := range cfg.Keys() {
		if utils.FoldKey(name) == settingsKey {
			continue
		}

		// an icon key with an empty body is an icon with no attributes
		section := menuconfig.NewSection()
		if cfg.Contains(name) {
			var ok bool
			if section, ok = cfg.GetSection(name); !ok {
				sink.AddCause(domain.ErrInvalidValue, fmt.Sprintf(ErrMsgIconNotSection, file, name))
				continue
			}
		}

		icon := NewIconSettings(file, name)
		icon.LoadFrom(section, sink)
		placeIcon(m, icon, sink)
	}

	m.SetRefreshTicks(settings.RefreshTicks)
	m.SetOpenActions(settings.OpenActions)

	return menu.LoadedMenu{
		Menu:     m,
		FileName: file,
		Commands: settings.Commands,
		OpenItem: settings.OpenItem,
	}
}

// placeIcon puts the icon at its configured position. Icons without a
// usable position are dropped. A missing material is reported but the icon
// is still placed.
func placeIcon(m *menu.Menu, icon *IconSettings, sink errcollect.Sink) {
	x, hasX := icon.Position(AttrPositionX)
	y, hasY := icon.Position(AttrPositionY)
	if !hasX || !hasY {
		// invalid values were already reported by LoadFrom
		for _, axis := range []AttributeType{AttrPositionX, AttrPositionY} {
			if !icon.Has(axis) && !icon.Failed(axis) {
				sink.AddCause(domain.ErrMissingIconAttribute, fmt.Sprintf(ErrMsgMissingAttribute, icon.SectionName, icon.MenuFile, axis.Key()))
				break
			}
		}
		return
	}

	row, col := y-1, x-1
	if col >= m.ColumnCount() {
		sink.AddCause(domain.ErrIconPositionOutOfGrid, fmt.Sprintf(ErrMsgOutOfGrid, icon.SectionName, icon.MenuFile, KeyPositionX, m.ColumnCount()))
		return
	}
	if row >= m.RowCount() {
		sink.AddCause(domain.ErrIconPositionOutOfGrid, fmt.Sprintf(ErrMsgOutOfGrid, icon.SectionName, icon.MenuFile, KeyPositionY, m.RowCount()))
		return
	}

	if previous, _ := m.SetIcon(row, col, icon.CreateIcon()); previous != nil {
		sink.AddWarning(domain.ErrOverriddenIcon, fmt.Sprintf(ErrMsgOverriddenIcon, icon.SectionName, icon.MenuFile))
	}

	if !icon.Has(AttrMaterial) && !icon.Failed(AttrMaterial) {
		sink.AddCause(domain.ErrMissingIconAttribute, fmt.Sprintf(ErrMsgMissingAttribute, icon.SectionName, icon.MenuFile, KeyMaterial))
	}
}
