package menu

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/utils"
)

// LoadedMenu is the parser's output for one file, consumed by the registry.
type LoadedMenu struct {
	Menu     *Menu
	FileName string
	Commands []string
	OpenItem *OpenItem
}

type namedMenu struct {
	name string
	menu *Menu
}

type commandEntry struct {
	command string // as written in the menu file
	namedMenu
}

// Registry indexes menus by file name and open command (both ignoring case)
// and by open item. It is rebuilt as a whole on every reload. All methods
// are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	byFile    map[string]namedMenu
	byCommand map[string]commandEntry
	byItem    map[OpenItem]*Menu
	server    domain.Server
}

var _ action.MenuOpener = (*Registry)(nil)

// NewRegistry returns an empty registry. server may be nil when console and
// broadcast actions have nowhere to go.
func NewRegistry(server domain.Server) *Registry {
	r := &Registry{server: server}
	r.clear()
	return r
}

func (r *Registry) clear() {
	r.byFile = make(map[string]namedMenu)
	r.byCommand = make(map[string]commandEntry)
	r.byItem = make(map[OpenItem]*Menu)
}

// Reset empties all three indices.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
}

// RegisterMenu indexes one loaded menu. Duplicate file names and commands
// are reported and the newer menu replaces the older one. Open item
// collisions are not reported.
func (r *Registry) RegisterMenu(loaded LoadedMenu, sink errcollect.Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(loaded, sink)
}

// ReplaceAll resets the registry and registers every menu while holding the
// write lock, so readers never observe a partially rebuilt registry.
func (r *Registry) ReplaceAll(menus []LoadedMenu, sink errcollect.Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
	for _, loaded := range menus {
		r.register(loaded, sink)
	}
}

func (r *Registry) register(loaded LoadedMenu, sink errcollect.Sink) {
	entry := namedMenu{name: loaded.FileName, menu: loaded.Menu}

	fileKey := utils.FoldKey(loaded.FileName)
	if existing, ok := r.byFile[fileKey]; ok {
		sink.AddCause(domain.ErrDuplicateMenuName, fmt.Sprintf(ErrMsgDuplicateFileName, existing.name, loaded.FileName))
	}
	r.byFile[fileKey] = entry

	for _, command := range loaded.Commands {
		if command == "" {
			continue
		}
		commandKey := utils.FoldKey(command)
		if existing, ok := r.byCommand[commandKey]; ok {
			sink.AddCause(domain.ErrDuplicateMenuCommand, fmt.Sprintf(ErrMsgDuplicateCommand, existing.name, loaded.FileName, command))
		}
		r.byCommand[commandKey] = commandEntry{command: command, namedMenu: entry}
	}

	if loaded.OpenItem != nil {
		r.byItem[*loaded.OpenItem] = loaded.Menu
	}
}

// GetMenuByFileName looks a menu up by its file name, ignoring case.
func (r *Registry) GetMenuByFileName(fileName string) (*Menu, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byFile[utils.FoldKey(fileName)]
	return entry.menu, ok
}

// GetMenuByOpenCommand looks a menu up by one of its commands, ignoring case.
func (r *Registry) GetMenuByOpenCommand(command string) (*Menu, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byCommand[utils.FoldKey(command)]
	return entry.menu, ok
}

// GetMenuFileNames returns the registered file names, sorted.
func (r *Registry) GetMenuFileNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byFile))
	for _, entry := range r.byFile {
		names = append(names, entry.name)
	}
	sort.Strings(names)
	return names
}

// GetOpenCommands returns every registered command, spelled as in its menu
// file, with the file name of the menu it opens.
func (r *Registry) GetOpenCommands() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.byCommand))
	for _, entry := range r.byCommand {
		out[entry.command] = entry.name
	}
	return out
}

// Counts returns the size of each index.
func (r *Registry) Counts() (menus, commands, openItems int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFile), len(r.byCommand), len(r.byItem)
}

func (r *Registry) actionContext(player domain.Player) action.Context {
	return action.Context{Player: player, Server: r.server, Menus: r}
}

// OpenMenuByItem opens, with permission checks, every menu whose open item
// matches the held item and interaction. It returns how many matched.
func (r *Registry) OpenMenuByItem(player domain.Player, held domain.HeldItem, click domain.ClickAction) int {
	r.mu.RLock()
	var matches []*Menu
	for item, m := range r.byItem {
		if item.Matches(held, click) {
			matches = append(matches, m)
		}
	}
	r.mu.RUnlock()

	ctx := r.actionContext(player)
	for _, m := range matches {
		m.OpenCheckingPermission(ctx)
	}
	return len(matches)
}

// OpenMenuByCommand opens the menu bound to command. It returns false when
// no menu uses the command.
func (r *Registry) OpenMenuByCommand(player domain.Player, command string) bool {
	m, ok := r.GetMenuByOpenCommand(command)
	if !ok {
		return false
	}
	m.OpenCheckingPermission(r.actionContext(player))
	return true
}

// OpenMenuByFileName opens a menu by file name. It returns false when no
// menu has that file name.
func (r *Registry) OpenMenuByFileName(player domain.Player, fileName string) bool {
	m, ok := r.GetMenuByFileName(fileName)
	if !ok {
		return false
	}
	m.OpenCheckingPermission(r.actionContext(player))
	return true
}
