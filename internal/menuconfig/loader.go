package menuconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/osse101/chestmenus/internal/domain"
)

// Config is one parsed menu file.
type Config struct {
	*Section
	SourceFile string
}

// FileName returns the base name of the source file, extension included.
// It is the identity menus are registered and opened by.
func (c *Config) FileName() string {
	return filepath.Base(c.SourceFile)
}

// IsMenuFile reports whether path has an extension LoadFile understands.
func IsMenuFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYML, ExtYAML, ExtTOML:
		return true
	}
	return false
}

// LoadFile reads and parses a menu file. Read and syntax failures wrap
// domain.ErrUnreadableSource; the caller skips the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}

	var section *Section
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtYML, ExtYAML:
		section, err = ParseYAML(data)
	case ExtTOML:
		section, err = ParseTOML(data)
	default:
		err = fmt.Errorf(ErrMsgUnsupportedExtension, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnreadableSource, path, err)
	}

	return &Config{Section: section, SourceFile: path}, nil
}

// ParseYAML parses a YAML document. Section keys keep their source order.
// An empty document yields an empty section.
func ParseYAML(data []byte) (*Section, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewSection(), nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == tagNull {
		return NewSection(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(ErrMsgRootNotMapping, root.Line)
	}
	return sectionFromYAML(root)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func sectionFromYAML(n *yaml.Node) (*Section, error) {
	s := NewSection()
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], resolveAlias(n.Content[i+1])
		if keyNode.Tag == tagMerge {
			merges = append(merges, valueNode)
			continue
		}
		value, err := valueFromYAML(valueNode)
		if err != nil {
			return nil, err
		}
		s.Set(keyNode.Value, value)
	}

	for _, m := range merges {
		sources := []*yaml.Node{m}
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		}
		for _, src := range sources {
			merged, err := valueFromYAML(resolveAlias(src))
			if err != nil {
				return nil, err
			}
			sub, ok := merged.(*Section)
			if !ok {
				return nil, fmt.Errorf(ErrMsgBadMerge, src.Line)
			}
			for _, key := range sub.Keys() {
				if !s.Contains(key) {
					v, _ := sub.get(key)
					s.Set(key, v)
				}
			}
		}
	}

	return s, nil
}

func valueFromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return sectionFromYAML(n)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := valueFromYAML(resolveAlias(item))
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		return scalarFromYAML(n), nil
	}
	return nil, fmt.Errorf(ErrMsgUnexpectedNode, n.Line)
}

func scalarFromYAML(n *yaml.Node) any {
	switch n.Tag {
	case tagNull:
		return nil
	case tagBool:
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b
		}
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case tagInt:
		var i int
		if err := n.Decode(&i); err == nil {
			return i
		}
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}

// ParseTOML parses a TOML document. TOML tables carry no order once decoded,
// so keys are sorted to keep loading deterministic.
func ParseTOML(data []byte) (*Section, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return sectionFromMap(raw), nil
}

func sectionFromMap(m map[string]any) *Section {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := NewSection()
	for _, k := range keys {
		s.Set(k, normalizeTOML(m[k]))
	}
	return s
}

func normalizeTOML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return sectionFromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeTOML(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = sectionFromMap(item)
		}
		return out
	case int64:
		return int(t)
	case string, bool, float64, nil:
		return t
	default:
		return fmt.Sprint(t)
	}
}
