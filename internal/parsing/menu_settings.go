package parsing

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/menuconfig"
	"github.com/osse101/chestmenus/internal/utils"
)

// MenuSettings holds the menu-wide values. Every field has a usable value
// even when its setting failed to load.
type MenuSettings struct {
	Title        string
	Rows         int
	Commands     []string
	OpenActions  []action.Action
	OpenItem     *menu.OpenItem
	RefreshTicks int
}

type settingsLoader struct {
	file    string
	section *menuconfig.Section
	sink    errcollect.Sink
}

// LoadMenuSettings reads the settings section of cfg. Each setting falls
// back on its own; problems go to sink.
func LoadMenuSettings(cfg *menuconfig.Config, sink errcollect.Sink) MenuSettings {
	file := cfg.FileName()

	section, ok := cfg.GetSection(SettingsSection)
	if !ok {
		sink.AddCause(domain.ErrMissingSection, fmt.Sprintf(ErrMsgMissingSettings, file, SettingsSection))
		return MenuSettings{Title: formatTitle(FallbackTitle), Rows: DefaultRows}
	}

	l := settingsLoader{file: file, section: section, sink: sink}
	return MenuSettings{
		Title:        l.title(),
		Rows:         l.rows(),
		Commands:     l.commands(),
		OpenActions:  l.openActions(),
		OpenItem:     l.openItem(),
		RefreshTicks: l.refreshTicks(),
	}
}

func (l settingsLoader) invalid(key string, cause error) {
	l.sink.AddCause(cause, fmt.Sprintf(ErrMsgInvalidSetting, l.file, key, rawValue(l.section, key)))
}

func (l settingsLoader) title() string {
	title, err := l.section.GetRequiredString(SettingName)
	if err != nil {
		l.invalid(SettingName, err)
		title = FallbackTitle
	}
	return formatTitle(title)
}

// formatTitle expands colour codes, then truncates to MaxTitleLength runes.
func formatTitle(title string) string {
	return utils.TruncateRunes(utils.AddColors(title), MaxTitleLength)
}

func (l settingsLoader) rows() int {
	rows, err := l.section.GetRequiredInt(SettingRows)
	if err != nil {
		l.invalid(SettingRows, err)
		return DefaultRows
	}
	if rows > menu.MaxRows {
		l.invalid(SettingRows, fmt.Errorf("%w: %s", domain.ErrInvalidValue, ErrMsgRowsRange))
		return DefaultRows
	}
	if rows <= 0 {
		rows = 1
	}
	return rows
}

func (l settingsLoader) commands() []string {
	if !l.section.Contains(SettingCommands) {
		return nil
	}
	raw := readList(l.section, SettingCommands)
	commands := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(strings.TrimPrefix(c, "/")); c != "" {
			commands = append(commands, c)
		}
	}
	return commands
}

func (l settingsLoader) openActions() []action.Action {
	if !l.section.Contains(SettingOpenActions) {
		return nil
	}
	actions, failures := ParseActions(readList(l.section, SettingOpenActions))
	for _, failure := range failures {
		l.sink.AddCause(failure, fmt.Sprintf(ErrMsgInvalidOpenAction, l.file, failedLine(failure)))
	}
	return actions
}

// openItem returns nil when the binding is absent or anything in it fails.
func (l settingsLoader) openItem() *menu.OpenItem {
	if !l.section.Contains(SettingOpenItem) {
		return nil
	}

	item, err := l.parseOpenItem()
	if err != nil {
		l.sink.AddCause(err, fmt.Sprintf(ErrMsgInvalidOpenItem, l.file, SettingOpenItem))
		return nil
	}
	return &item
}

func (l settingsLoader) parseOpenItem() (menu.OpenItem, error) {
	section, ok := l.section.GetSection(SettingOpenItem)
	if !ok {
		return menu.OpenItem{}, fmt.Errorf("%w: %s must be a section", domain.ErrInvalidValue, SettingOpenItem)
	}

	raw, err := section.GetRequiredString(SettingOpenMaterial)
	if err != nil {
		return menu.OpenItem{}, err
	}
	spec, err := material.ParseItemSpec(raw, false)
	if err != nil {
		return menu.OpenItem{}, err
	}
	if err := spec.CheckNotAir(); err != nil {
		return menu.OpenItem{}, err
	}

	click, ok := menu.ClickTypeFromOptions(section.GetBool(SettingLeftClick), section.GetBool(SettingRightClick))
	if !ok {
		return menu.OpenItem{}, fmt.Errorf("%w: %s", domain.ErrInvalidValue, ErrMsgNoClickType)
	}

	return menu.NewOpenItem(spec, click), nil
}

// refreshTicks converts seconds to ticks; 0 means refresh is disabled.
func (l settingsLoader) refreshTicks() int {
	if !l.section.Contains(SettingAutoRefresh) {
		return 0
	}

	seconds, err := l.section.GetDouble(SettingAutoRefresh)
	if err == nil && seconds <= 0 {
		err = domain.NewParseError(domain.NotPositive, rawValue(l.section, SettingAutoRefresh), ErrMsgRefreshRange)
	}
	if err != nil {
		l.invalid(SettingAutoRefresh, err)
		return 0
	}

	return RefreshTicks(seconds)
}

// RefreshTicks converts a positive interval in seconds to game ticks,
// never less than MinRefreshTicks.
func RefreshTicks(seconds float64) int {
	ticks := int(math.Round(seconds * TicksPerSecond))
	if ticks < MinRefreshTicks {
		ticks = MinRefreshTicks
	}
	return ticks
}
