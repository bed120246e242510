// Package action parses and runs the one-line scripted actions attached to
// icons and to menu opening.
package action

import (
	"strings"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/utils"
)

// Kind tags an Action variant.
type Kind int

const (
	KindPlayerCommand Kind = iota
	KindConsoleCommand
	KindOpCommand
	KindTell
	KindBroadcast
	KindOpenMenu
	KindConnectServer
	KindGive
	KindSound
	KindDisabled
)

func (k Kind) String() string {
	switch k {
	case KindPlayerCommand:
		return "player-command"
	case KindConsoleCommand:
		return "console-command"
	case KindOpCommand:
		return "op-command"
	case KindTell:
		return "tell"
	case KindBroadcast:
		return "broadcast"
	case KindOpenMenu:
		return "open-menu"
	case KindConnectServer:
		return "server"
	case KindGive:
		return "give"
	case KindSound:
		return "sound"
	case KindDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// MenuOpener opens another menu by file name, checking permissions.
// It returns false when no such menu is registered.
type MenuOpener interface {
	OpenMenuByFileName(player domain.Player, fileName string) bool
}

// Context carries the collaborators an action needs to run.
type Context struct {
	Player domain.Player
	Server domain.Server
	Menus  MenuOpener
}

// Action is one executable step.
type Action interface {
	Kind() Kind
	Execute(ctx Context)
}

// ExecuteAll runs actions in order.
func ExecuteAll(ctx Context, actions []Action) {
	for _, a := range actions {
		a.Execute(ctx)
	}
}

func withPlayer(text string, player domain.Player) string {
	if player == nil || !strings.Contains(text, PlayerPlaceholder) {
		return text
	}
	return strings.ReplaceAll(text, PlayerPlaceholder, player.Name())
}

type PlayerCommand struct{ Command string }

func (a PlayerCommand) Kind() Kind { return KindPlayerCommand }
func (a PlayerCommand) Execute(ctx Context) {
	ctx.Player.PerformCommand(withPlayer(a.Command, ctx.Player))
}

type ConsoleCommand struct{ Command string }

func (a ConsoleCommand) Kind() Kind { return KindConsoleCommand }
func (a ConsoleCommand) Execute(ctx Context) {
	if ctx.Server == nil {
		return
	}
	ctx.Server.DispatchConsoleCommand(withPlayer(a.Command, ctx.Player))
}

type OpCommand struct{ Command string }

func (a OpCommand) Kind() Kind { return KindOpCommand }
func (a OpCommand) Execute(ctx Context) {
	ctx.Player.PerformCommandAsOperator(withPlayer(a.Command, ctx.Player))
}

type Tell struct{ Message string }

func (a Tell) Kind() Kind { return KindTell }
func (a Tell) Execute(ctx Context) {
	ctx.Player.SendMessage(withPlayer(a.Message, ctx.Player))
}

type Broadcast struct{ Message string }

func (a Broadcast) Kind() Kind { return KindBroadcast }
func (a Broadcast) Execute(ctx Context) {
	if ctx.Server == nil {
		return
	}
	ctx.Server.Broadcast(withPlayer(a.Message, ctx.Player))
}

type OpenMenu struct{ FileName string }

func (a OpenMenu) Kind() Kind { return KindOpenMenu }
func (a OpenMenu) Execute(ctx Context) {
	if ctx.Menus == nil || !ctx.Menus.OpenMenuByFileName(ctx.Player, a.FileName) {
		ctx.Player.SendMessage(utils.AddColors(MsgMenuNotFound))
	}
}

type ConnectServer struct{ Server string }

func (a ConnectServer) Kind() Kind { return KindConnectServer }
func (a ConnectServer) Execute(ctx Context) {
	ctx.Player.ConnectToServer(a.Server)
}

type Give struct{ Item material.ItemSpec }

func (a Give) Kind() Kind { return KindGive }
func (a Give) Execute(ctx Context) {
	ctx.Player.GiveItem(a.Item.Material.String(), a.Item.Durability, a.Item.Amount)
}

type Sound struct {
	Name   string
	Pitch  float64
	Volume float64
}

func (a Sound) Kind() Kind { return KindSound }
func (a Sound) Execute(ctx Context) {
	ctx.Player.PlaySound(a.Name, a.Pitch, a.Volume)
}

// Disabled stands in for an action that failed to parse. Running it tells the
// player a configuration error prevented the original action.
type Disabled struct{ ErrorMessage string }

func (a Disabled) Kind() Kind { return KindDisabled }
func (a Disabled) Execute(ctx Context) {
	ctx.Player.SendMessage(a.ErrorMessage)
}
