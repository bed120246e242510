package domain

// The host game server is a black box. These interfaces are the only surface
// the menu core touches; a plugin adapter implements them on top of the real
// server API.

// ClickAction is the kind of interaction that produced an item click.
type ClickAction int

const (
	LeftClickAir ClickAction = iota
	LeftClickBlock
	RightClickAir
	RightClickBlock
	Physical
)

// IsLeftClick reports whether the action is a left click.
func (a ClickAction) IsLeftClick() bool {
	return a == LeftClickAir || a == LeftClickBlock
}

// IsRightClick reports whether the action is a right click.
func (a ClickAction) IsRightClick() bool {
	return a == RightClickAir || a == RightClickBlock
}

func (a ClickAction) String() string {
	switch a {
	case LeftClickAir:
		return "LEFT_CLICK_AIR"
	case LeftClickBlock:
		return "LEFT_CLICK_BLOCK"
	case RightClickAir:
		return "RIGHT_CLICK_AIR"
	case RightClickBlock:
		return "RIGHT_CLICK_BLOCK"
	case Physical:
		return "PHYSICAL"
	default:
		return "UNKNOWN"
	}
}

// HeldItem is the item a player holds when interacting.
type HeldItem struct {
	Material   string
	Durability int
	Amount     int
}

// MenuView is what the host needs to render a menu window.
type MenuView interface {
	Title() string
	RowCount() int
	ColumnCount() int
}

// Player is the host-side handle for an online player.
type Player interface {
	ID() string
	Name() string
	HasPermission(node string) bool
	SendMessage(message string)
	PerformCommand(command string)
	PerformCommandAsOperator(command string)
	PlaySound(sound string, pitch, volume float64)
	GiveItem(material string, durability, amount int)
	ConnectToServer(server string)
	OpenMenu(view MenuView)
	CloseMenu()
}

// Server is the host-side handle for server wide operations.
type Server interface {
	DispatchConsoleCommand(command string)
	Broadcast(message string)
}
