package bootstrap

import (
	"log/slog"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/utils"
)

// LogServer is the server handle used when no game server is attached.
// Console commands and broadcasts are only logged.
type LogServer struct {
	log *slog.Logger
}

var _ domain.Server = (*LogServer)(nil)

func NewLogServer() *LogServer {
	return &LogServer{log: slog.Default().With("component", ComponentHost)}
}

func (s *LogServer) DispatchConsoleCommand(command string) {
	s.log.Info(LogMsgConsoleCommand, "command", command)
}

func (s *LogServer) Broadcast(message string) {
	s.log.Info(LogMsgBroadcast, "message", utils.StripColors(message))
}
