package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/material"
)

type stubOpener struct {
	known  map[string]bool
	opened []string
}

func (s *stubOpener) OpenMenuByFileName(player domain.Player, fileName string) bool {
	if !s.known[fileName] {
		return false
	}
	s.opened = append(s.opened, fileName)
	return true
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Action
	}{
		{"plain command", "spawn", PlayerCommand{Command: "spawn"}},
		{"slash command", "/warp shop", PlayerCommand{Command: "warp shop"}},
		{"command with colon later", "say hi: there", PlayerCommand{Command: "say hi: there"}},
		{"console", "console: give {player} diamond 1", ConsoleCommand{Command: "give {player} diamond 1"}},
		{"op prefix is case insensitive", "OP: /gamemode creative", OpCommand{Command: "gamemode creative"}},
		{"open", "open: shop.yml", OpenMenu{FileName: "shop.yml"}},
		{"server", "server: lobby", ConnectServer{Server: "lobby"}},
		{"tell colours", "tell: &aWelcome", Tell{Message: "§aWelcome"}},
		{"broadcast", "broadcast: &e{player} joined", Broadcast{Message: "§e{player} joined"}},
		{"give", "give: golden apple, 3", Give{Item: material.ItemSpec{Material: "GOLDEN_APPLE", Amount: 3}}},
		{"sound defaults", "sound: ui button click", Sound{Name: "UI_BUTTON_CLICK", Pitch: 1, Volume: 1}},
		{"sound with pitch and volume", "sound: entity_player_levelup, 0.5, 2", Sound{Name: "ENTITY_PLAYER_LEVELUP", Pitch: 0.5, Volume: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		sentinel error
	}{
		{"empty", "   ", domain.ErrInvalidAction},
		{"unknown prefix", "teleport: 0 64 0", domain.ErrInvalidAction},
		{"missing argument", "console:", domain.ErrInvalidAction},
		{"bad give material", "give: unobtainium", domain.ErrInvalidAction},
		{"give air", "give: air", domain.ErrInvalidAction},
		{"unknown sound", "sound: dubstep", domain.ErrUnknownSound},
		{"bad pitch", "sound: ui_button_click, high", domain.ErrInvalidAction},
		{"bad volume", "sound: ui_button_click, 1, loud", domain.ErrInvalidAction},
		{"too many sound args", "sound: ui_button_click, 1, 1, 1", domain.ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var parseErr *domain.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Input, "offending line is preserved")
		})
	}
}

func TestExecuteAll(t *testing.T) {
	player := domain.NewFakePlayer("Steve")
	server := domain.NewFakeServer()
	opener := &stubOpener{known: map[string]bool{"shop.yml": true}}
	ctx := Context{Player: player, Server: server, Menus: opener}

	ExecuteAll(ctx, []Action{
		PlayerCommand{Command: "spawn"},
		ConsoleCommand{Command: "eco give {player} 10"},
		OpCommand{Command: "fly {player}"},
		Tell{Message: "hello {player}"},
		Broadcast{Message: "{player} bought a rank"},
		OpenMenu{FileName: "shop.yml"},
		OpenMenu{FileName: "missing.yml"},
		ConnectServer{Server: "lobby"},
		Give{Item: material.ItemSpec{Material: "DIAMOND", Amount: 2}},
		Sound{Name: "UI_BUTTON_CLICK", Pitch: 1, Volume: 1},
		Disabled{ErrorMessage: "broken"},
	})

	assert.Equal(t, []string{"spawn"}, player.Commands)
	assert.Equal(t, []string{"eco give Steve 10"}, server.ConsoleCommands)
	assert.Equal(t, []string{"fly Steve"}, player.OpCommands)
	assert.Equal(t, []string{"Steve bought a rank"}, server.Broadcasts)
	assert.Equal(t, []string{"shop.yml"}, opener.opened)
	assert.Equal(t, []string{"lobby"}, player.ServerSwitches)
	assert.Equal(t, []domain.HeldItem{{Material: "DIAMOND", Durability: 0, Amount: 2}}, player.GivenItems)
	assert.Equal(t, []string{"UI_BUTTON_CLICK"}, player.Sounds)
	assert.Equal(t, []string{"hello Steve", "§cMenu not found! Please inform the staff.", "broken"}, player.Messages)
}
