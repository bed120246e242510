package action

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/utils"
)

var prefixPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z-]*):(.*)$`)

// Parse turns one serialized action line into an Action. Lines without a
// prefix are player commands. Failures are InvalidAction parse errors that
// keep the offending line as their input.
func Parse(line string) (Action, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, invalid(line, ErrMsgEmptyAction)
	}

	m := prefixPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return PlayerCommand{Command: strings.TrimPrefix(trimmed, "/")}, nil
	}

	prefix := strings.ToLower(m[1])
	arg := strings.TrimSpace(m[2])

	if !isKnownPrefix(prefix) {
		return nil, invalid(line, fmt.Sprintf(ErrMsgUnknownPrefix, m[1]))
	}
	if arg == "" {
		return nil, invalid(line, fmt.Sprintf(ErrMsgMissingArgument, prefix))
	}

	switch prefix {
	case PrefixConsole:
		return ConsoleCommand{Command: strings.TrimPrefix(arg, "/")}, nil
	case PrefixOp:
		return OpCommand{Command: strings.TrimPrefix(arg, "/")}, nil
	case PrefixOpen:
		return OpenMenu{FileName: arg}, nil
	case PrefixServer:
		return ConnectServer{Server: arg}, nil
	case PrefixTell:
		return Tell{Message: utils.AddColors(arg)}, nil
	case PrefixBroadcast:
		return Broadcast{Message: utils.AddColors(arg)}, nil
	case PrefixGive:
		return parseGive(line, arg)
	default:
		return parseSound(line, arg)
	}
}

func isKnownPrefix(prefix string) bool {
	switch prefix {
	case PrefixConsole, PrefixOp, PrefixOpen, PrefixServer, PrefixTell, PrefixBroadcast, PrefixGive, PrefixSound:
		return true
	}
	return false
}

func parseGive(line, arg string) (Action, error) {
	spec, err := material.ParseItemSpec(arg, true)
	if err == nil {
		err = spec.CheckNotAir()
	}
	if err != nil {
		return nil, invalid(line, fmt.Sprintf(ErrMsgInvalidGive, err))
	}
	return Give{Item: spec}, nil
}

func parseSound(line, arg string) (Action, error) {
	parts := strings.Split(arg, ",")
	if len(parts) > 3 {
		return nil, invalid(line, ErrMsgTooManySoundArgs)
	}

	name, ok := matchSound(parts[0])
	if !ok {
		return nil, domain.NewParseError(domain.UnknownSound, line, strings.TrimSpace(parts[0]))
	}

	sound := Sound{Name: name, Pitch: DefaultSoundPitch, Volume: DefaultSoundVolume}
	if len(parts) > 1 {
		pitch, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, invalid(line, ErrMsgInvalidSoundPitch)
		}
		sound.Pitch = pitch
	}
	if len(parts) > 2 {
		volume, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, invalid(line, ErrMsgInvalidSoundVol)
		}
		sound.Volume = volume
	}
	return sound, nil
}

func invalid(line, reason string) *domain.ParseError {
	return domain.NewParseError(domain.InvalidAction, line, reason)
}
