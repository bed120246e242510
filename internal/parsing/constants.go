package parsing

import "github.com/osse101/chestmenus/internal/menu"

// Icon attribute keys (matched case-insensitively)
const (
	KeyPositionX         = "POSITION-X"
	KeyPositionY         = "POSITION-Y"
	KeyMaterial          = "MATERIAL"
	KeyDurability        = "DURABILITY"
	KeyAmount            = "AMOUNT"
	KeyName              = "NAME"
	KeyLore              = "LORE"
	KeyActions           = "ACTIONS"
	KeyPermission        = "PERMISSION"
	KeyPermissionMessage = "PERMISSION-MESSAGE"
	KeyKeepOpen          = "KEEP-OPEN"
)

// Menu settings keys
const (
	SettingsSection     = "menu-settings"
	SettingName         = "name"
	SettingRows         = "rows"
	SettingCommands     = "commands"
	SettingOpenActions  = "open-actions"
	SettingOpenItem     = "open-with-item"
	SettingOpenMaterial = "material"
	SettingLeftClick    = "left-click"
	SettingRightClick   = "right-click"
	SettingAutoRefresh  = "auto-refresh"
)

// Defaults
const (
	DefaultRows     = menu.MaxRows
	FallbackTitle   = "&4No name set"
	MaxTitleLength  = 32
	MaxAmount       = 64
	TicksPerSecond  = 20
	MinRefreshTicks = 1
	DefaultAmount   = 1
)

// Collected problems
const (
	ErrMsgMissingSettings   = "The menu %q doesn't have a %q section"
	ErrMsgInvalidSetting    = "The menu %q has an invalid setting %q (value %q)"
	ErrMsgInvalidOpenAction = "The menu %q has an invalid open action %q"
	ErrMsgInvalidOpenItem   = "The menu %q has an invalid open item in %q"
	ErrMsgIconNotSection    = "The menu %q has a top-level value %q that is not an icon section"
	ErrMsgInvalidAttribute  = "The icon %q in the menu %q has an invalid attribute %q (value %q)"
	ErrMsgInvalidIconAction = "The icon %q in the menu %q has an invalid action %q"
	ErrMsgMissingAttribute  = "The icon %q in the menu %q is missing the attribute %q"
	ErrMsgOutOfGrid         = "The icon %q in the menu %q has an invalid attribute %q: it must be between 1 and %d"
	ErrMsgOverriddenIcon    = "The icon %q in the menu %q is overriding another icon with the same position"
)

// Parse failure reasons
const (
	ErrMsgAmountRange  = "the amount must be between 1 and 64"
	ErrMsgRowsRange    = "a menu has at most 6 rows"
	ErrMsgNoClickType  = "at least one of left-click and right-click must be enabled"
	ErrMsgRefreshRange = "the auto-refresh interval must be a positive number of seconds"
)

// MsgDisabledAction is shown to a player who triggers an action that failed
// to load.
const MsgDisabledAction = "&cThis action is disabled because of a configuration error: %v"
