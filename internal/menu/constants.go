package menu

// Columns is the fixed width of every menu grid.
const Columns = 9

// MaxRows is the height of the largest chest window the client can show.
const MaxRows = 6

// DefaultOpenPermissionPrefix is prepended to the file name to build the
// permission required to open a menu.
const DefaultOpenPermissionPrefix = "chestmenus.open."

// PermissionPlaceholder is replaced with the missing permission node.
const PermissionPlaceholder = "{permission}"

// Player-facing messages (colour codes expanded on use)
const (
	MsgNoOpenPermission = "&cYou don't have permission &e{permission} &cto use this menu."
	MsgNoIconPermission = "&cYou don't have permission for this icon."
)

// Registry conflict messages
const (
	ErrMsgDuplicateFileName = "Two menus have the same file name (%q and %q) with different cases. Only the last one will be opened."
	ErrMsgDuplicateCommand  = "The menus %q and %q have the same command %q. Only the last one will work."
)
