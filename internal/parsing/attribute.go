// Package parsing turns menu configuration sections into placed, validated
// menus, collecting every recoverable problem instead of stopping at it.
package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/chestmenus/internal/action"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/menuconfig"
	"github.com/osse101/chestmenus/internal/utils"
)

// AttributeType names one icon attribute.
type AttributeType int

const (
	AttrPositionX AttributeType = iota
	AttrPositionY
	AttrMaterial
	AttrDurability
	AttrAmount
	AttrName
	AttrLore
	AttrActions
	AttrPermission
	AttrPermissionMessage
	AttrKeepOpen
)

// attributeTypes lists every attribute in load order.
var attributeTypes = []AttributeType{
	AttrPositionX, AttrPositionY, AttrMaterial, AttrDurability, AttrAmount, AttrName,
	AttrLore, AttrActions, AttrPermission, AttrPermissionMessage, AttrKeepOpen,
}

// Key returns the configuration key the attribute is read from.
func (t AttributeType) Key() string {
	switch t {
	case AttrPositionX:
		return KeyPositionX
	case AttrPositionY:
		return KeyPositionY
	case AttrMaterial:
		return KeyMaterial
	case AttrDurability:
		return KeyDurability
	case AttrAmount:
		return KeyAmount
	case AttrName:
		return KeyName
	case AttrLore:
		return KeyLore
	case AttrActions:
		return KeyActions
	case AttrPermission:
		return KeyPermission
	case AttrPermissionMessage:
		return KeyPermissionMessage
	case AttrKeepOpen:
		return KeyKeepOpen
	}
	return "UNKNOWN"
}

func (t AttributeType) String() string { return t.Key() }

// Attribute is one parsed icon attribute. Each AttributeType has exactly
// one concrete Attribute type.
type Attribute interface {
	Type() AttributeType
}

type PositionAttribute struct {
	Axis  AttributeType
	Value int
}

type MaterialAttribute struct{ Item material.ItemSpec }

type DurabilityAttribute struct{ Value int }

type AmountAttribute struct{ Value int }

type NameAttribute struct{ Value string }

type LoreAttribute struct{ Lines []string }

// ActionsAttribute keeps unparsable lines as disabled actions; Failures
// holds the parse error for each of them.
type ActionsAttribute struct {
	Actions  []action.Action
	Failures []error
}

type PermissionAttribute struct{ Value string }

type PermissionMessageAttribute struct{ Value string }

type KeepOpenAttribute struct{ Value bool }

func (a PositionAttribute) Type() AttributeType        { return a.Axis }
func (MaterialAttribute) Type() AttributeType          { return AttrMaterial }
func (DurabilityAttribute) Type() AttributeType        { return AttrDurability }
func (AmountAttribute) Type() AttributeType            { return AttrAmount }
func (NameAttribute) Type() AttributeType              { return AttrName }
func (LoreAttribute) Type() AttributeType              { return AttrLore }
func (ActionsAttribute) Type() AttributeType           { return AttrActions }
func (PermissionAttribute) Type() AttributeType        { return AttrPermission }
func (PermissionMessageAttribute) Type() AttributeType { return AttrPermissionMessage }
func (KeepOpenAttribute) Type() AttributeType          { return AttrKeepOpen }

// ParseAttribute reads and parses one attribute from section. ok is false
// when the key is absent or blank; a present but malformed value returns an
// error.
func ParseAttribute(t AttributeType, section *menuconfig.Section) (attr Attribute, ok bool, err error) {
	key := t.Key()
	if !section.Contains(key) {
		return nil, false, nil
	}

	switch t {
	case AttrLore:
		lines, _ := section.GetStringList(key)
		return LoreAttribute{Lines: utils.AddColorsToAll(lines)}, true, nil
	case AttrActions:
		lines := readList(section, key)
		if len(lines) == 0 {
			return nil, false, nil
		}
		actions, failures := ParseActions(lines)
		return ActionsAttribute{Actions: actions, Failures: failures}, true, nil
	case AttrKeepOpen:
		raw, _ := section.GetString(key)
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, true, fmt.Errorf("%w: %q is not true or false", domain.ErrInvalidValue, raw)
		}
		return KeepOpenAttribute{Value: b}, true, nil
	}

	raw, isScalar := section.GetString(key)
	if !isScalar {
		return nil, true, fmt.Errorf("%w: %s must be a single value", domain.ErrInvalidValue, key)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, false, nil
	}

	switch t {
	case AttrPositionX, AttrPositionY:
		n, err := ParsePositiveInt(raw)
		if err != nil {
			return nil, true, err
		}
		return PositionAttribute{Axis: t, Value: n}, true, nil
	case AttrMaterial:
		spec, err := material.ParseItemSpec(raw, false)
		if err != nil {
			return nil, true, err
		}
		return MaterialAttribute{Item: spec}, true, nil
	case AttrDurability:
		n, err := material.ParseDurability(raw)
		if err != nil {
			return nil, true, err
		}
		return DurabilityAttribute{Value: n}, true, nil
	case AttrAmount:
		n, err := ParsePositiveInt(raw)
		if err == nil && n > MaxAmount {
			err = domain.NewParseError(domain.InvalidAmount, raw, ErrMsgAmountRange)
		}
		if err != nil {
			return nil, true, err
		}
		return AmountAttribute{Value: n}, true, nil
	case AttrName:
		return NameAttribute{Value: utils.AddColors(raw)}, true, nil
	case AttrPermission:
		return PermissionAttribute{Value: strings.TrimSpace(raw)}, true, nil
	case AttrPermissionMessage:
		return PermissionMessageAttribute{Value: utils.AddColors(raw)}, true, nil
	}
	return nil, false, nil
}

// ParsePositiveInt parses an integer greater than zero.
func ParsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewParseError(domain.InvalidNumber, raw, "")
	}
	if n <= 0 {
		return 0, domain.NewParseError(domain.NotPositive, raw, "")
	}
	return n, nil
}

// ParseActions parses every non-blank line. A line that fails is replaced by
// a disabled action so the list keeps its order; its error is returned.
func ParseActions(lines []string) ([]action.Action, []error) {
	actions := make([]action.Action, 0, len(lines))
	var failures []error
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := action.Parse(line)
		if err != nil {
			failures = append(failures, err)
			a = action.Disabled{ErrorMessage: utils.AddColors(fmt.Sprintf(MsgDisabledAction, err))}
		}
		actions = append(actions, a)
	}
	return actions, failures
}

// readList reads a list value, or a single string split on ';'.
func readList(section *menuconfig.Section, key string) []string {
	if section.IsList(key) {
		values, _ := section.GetStringList(key)
		out := make([]string, 0, len(values))
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	raw, _ := section.GetString(key)
	return utils.SplitList(raw)
}

// rawValue renders the configured value for diagnostics.
func rawValue(section *menuconfig.Section, key string) string {
	if section.IsList(key) {
		values, _ := section.GetStringList(key)
		return "[" + strings.Join(values, ", ") + "]"
	}
	raw, _ := section.GetString(key)
	return raw
}
