package menuconfig

// Supported menu file extensions
const (
	ExtYML  = ".yml"
	ExtYAML = ".yaml"
	ExtTOML = ".toml"
)

// YAML core schema tags
const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagMerge = "!!merge"
)

// Error messages
const (
	ErrMsgUnsupportedExtension = "unsupported menu file extension %q"
	ErrMsgRootNotMapping       = "line %d: the document root must be a mapping"
	ErrMsgBadMerge             = "line %d: merge key must reference a mapping"
	ErrMsgUnexpectedNode       = "line %d: unexpected YAML node"
)
