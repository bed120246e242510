package action

// Action prefixes, matched case-insensitively and followed by ':'
const (
	PrefixConsole   = "console"
	PrefixOp        = "op"
	PrefixOpen      = "open"
	PrefixServer    = "server"
	PrefixTell      = "tell"
	PrefixBroadcast = "broadcast"
	PrefixGive      = "give"
	PrefixSound     = "sound"
)

// PlayerPlaceholder is replaced with the acting player's name on execution.
const PlayerPlaceholder = "{player}"

// Sound defaults
const (
	DefaultSoundPitch  = 1.0
	DefaultSoundVolume = 1.0
)

// Parse failure reasons
const (
	ErrMsgEmptyAction       = "the action is empty"
	ErrMsgUnknownPrefix     = "unknown action type %q"
	ErrMsgMissingArgument   = "the action %q requires an argument"
	ErrMsgInvalidGive       = "invalid item to give: %v"
	ErrMsgInvalidSoundPitch = "the sound pitch must be a number"
	ErrMsgInvalidSoundVol   = "the sound volume must be a number"
	ErrMsgTooManySoundArgs  = "a sound takes at most a name, a pitch and a volume"
)

// Player-facing messages (colour codes expanded on use)
const (
	MsgMenuNotFound = "&cMenu not found! Please inform the staff."
)
