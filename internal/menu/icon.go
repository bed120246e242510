package menu

import (
	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/utils"
)

// Icon is one placed, clickable cell. An empty Material marks an icon whose
// material was missing from its definition; it still occupies its slot.
type Icon struct {
	Material          material.Material
	Durability        int
	Amount            int
	Name              string
	Lore              []string
	Actions           []action.Action
	Permission        string
	PermissionMessage string
	KeepOpen          bool
}

// HasMaterial reports whether the icon resolved a material.
func (i *Icon) HasMaterial() bool {
	return i.Material != ""
}

// CanClick reports whether the player may use the icon.
func (i *Icon) CanClick(ctx action.Context) bool {
	return i.Permission == "" || ctx.Player.HasPermission(i.Permission)
}

// OnClick runs the icon for the clicking player and reports whether the
// menu should close afterwards.
func (i *Icon) OnClick(ctx action.Context) bool {
	if !i.CanClick(ctx) {
		msg := i.PermissionMessage
		if msg == "" {
			msg = utils.AddColors(MsgNoIconPermission)
		}
		ctx.Player.SendMessage(msg)
		return false
	}

	action.ExecuteAll(ctx, i.Actions)
	return !i.KeepOpen
}
