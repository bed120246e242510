package domain

import "sync"

// FakePlayer is a recording Player used by tests and the menucheck tool.
// It keeps every interaction in memory so assertions can inspect them.
type FakePlayer struct {
	mu sync.Mutex

	PlayerID    string
	PlayerName  string
	Permissions map[string]bool
	Operator    bool

	Messages       []string
	Commands       []string
	OpCommands     []string
	Sounds         []string
	GivenItems     []HeldItem
	ServerSwitches []string
	OpenedMenus    []MenuView
	CloseMenuCalls int
}

// NewFakePlayer creates a player with the given name and granted permissions.
func NewFakePlayer(name string, permissions ...string) *FakePlayer {
	perms := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		perms[p] = true
	}
	return &FakePlayer{
		PlayerID:    "id-" + name,
		PlayerName:  name,
		Permissions: perms,
	}
}

func (p *FakePlayer) ID() string   { return p.PlayerID }
func (p *FakePlayer) Name() string { return p.PlayerName }

func (p *FakePlayer) HasPermission(node string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Operator || p.Permissions[node]
}

func (p *FakePlayer) SendMessage(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, message)
}

func (p *FakePlayer) PerformCommand(command string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Commands = append(p.Commands, command)
}

func (p *FakePlayer) PerformCommandAsOperator(command string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.OpCommands = append(p.OpCommands, command)
}

func (p *FakePlayer) PlaySound(sound string, pitch, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sounds = append(p.Sounds, sound)
}

func (p *FakePlayer) GiveItem(material string, durability, amount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.GivenItems = append(p.GivenItems, HeldItem{Material: material, Durability: durability, Amount: amount})
}

func (p *FakePlayer) ConnectToServer(server string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ServerSwitches = append(p.ServerSwitches, server)
}

func (p *FakePlayer) OpenMenu(view MenuView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.OpenedMenus = append(p.OpenedMenus, view)
}

func (p *FakePlayer) CloseMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.CloseMenuCalls++
}

// FakeServer records console commands and broadcasts.
type FakeServer struct {
	mu sync.Mutex

	ConsoleCommands []string
	Broadcasts      []string
}

func NewFakeServer() *FakeServer {
	return &FakeServer{}
}

func (s *FakeServer) DispatchConsoleCommand(command string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ConsoleCommands = append(s.ConsoleCommands, command)
}

func (s *FakeServer) Broadcast(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Broadcasts = append(s.Broadcasts, message)
}
