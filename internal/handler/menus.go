package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/chestmenus/internal/menu"
)

// MenuRegistry is the read side of the menu registry.
type MenuRegistry interface {
	GetMenuFileNames() []string
	GetMenuByFileName(fileName string) (*menu.Menu, bool)
	GetMenuByOpenCommand(command string) (*menu.Menu, bool)
	GetOpenCommands() map[string]string
}

// MenuHandler serves the loaded menus.
type MenuHandler struct {
	registry MenuRegistry
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(registry MenuRegistry) *MenuHandler {
	return &MenuHandler{registry: registry}
}

// HandleListMenus lists every loaded menu.
// GET /api/v1/menus
func (h *MenuHandler) HandleListMenus(w http.ResponseWriter, r *http.Request) {
	commands := commandsByFile(h.registry.GetOpenCommands())
	names := h.registry.GetMenuFileNames()

	menus := make([]MenuSummary, 0, len(names))
	for _, name := range names {
		m, ok := h.registry.GetMenuByFileName(name)
		if !ok {
			// removed by a concurrent reload
			continue
		}
		menus = append(menus, newMenuSummary(name, m, commands[name]))
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: menus})
}

// HandleGetMenu returns one menu with its icons.
// GET /api/v1/menus/{file}
func (h *MenuHandler) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	m, ok := h.registry.GetMenuByFileName(file)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgMenuNotFound)
		return
	}
	commands := commandsByFile(h.registry.GetOpenCommands())
	respondJSON(w, http.StatusOK, DataResponse{Data: newMenuDetail(m.SourceFile(), m, commands[m.SourceFile()])})
}

// HandleGetCommand resolves a command to the menu it opens.
// GET /api/v1/commands/{command}
func (h *MenuHandler) HandleGetCommand(w http.ResponseWriter, r *http.Request) {
	command := chi.URLParam(r, "command")
	m, ok := h.registry.GetMenuByOpenCommand(command)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgCommandUnknown)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: CommandView{Command: command, File: m.SourceFile()}})
}
