package parsing

import (
	"errors"
	"fmt"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/menuconfig"
)

// IconSettings is the attribute bag of one icon section, used only while
// loading. Attributes that failed to parse are absent and marked failed.
type IconSettings struct {
	MenuFile    string
	SectionName string

	attributes map[AttributeType]Attribute
	failed     map[AttributeType]bool
}

func NewIconSettings(menuFile, sectionName string) *IconSettings {
	return &IconSettings{
		MenuFile:    menuFile,
		SectionName: sectionName,
		attributes:  make(map[AttributeType]Attribute),
		failed:      make(map[AttributeType]bool),
	}
}

// LoadFrom parses every known attribute in section. Each failure is sent to
// sink and loading carries on with the next attribute.
func (s *IconSettings) LoadFrom(section *menuconfig.Section, sink errcollect.Sink) {
	for _, t := range attributeTypes {
		attr, ok, err := ParseAttribute(t, section)
		if err != nil {
			s.failed[t] = true
			sink.AddCause(err, fmt.Sprintf(ErrMsgInvalidAttribute, s.SectionName, s.MenuFile, t.Key(), rawValue(section, t.Key())))
			continue
		}
		if !ok {
			continue
		}
		if actions, isActions := attr.(ActionsAttribute); isActions {
			for _, failure := range actions.Failures {
				sink.AddCause(failure, fmt.Sprintf(ErrMsgInvalidIconAction, s.SectionName, s.MenuFile, failedLine(failure)))
			}
		}
		s.attributes[t] = attr
	}
}

// Get returns the parsed attribute of type t.
func (s *IconSettings) Get(t AttributeType) (Attribute, bool) {
	attr, ok := s.attributes[t]
	return attr, ok
}

// Has reports whether attribute t was present and valid.
func (s *IconSettings) Has(t AttributeType) bool {
	_, ok := s.attributes[t]
	return ok
}

// Failed reports whether attribute t was present but invalid.
func (s *IconSettings) Failed(t AttributeType) bool {
	return s.failed[t]
}

// Position returns the 1-based value of a position attribute.
func (s *IconSettings) Position(axis AttributeType) (int, bool) {
	attr, ok := s.attributes[axis].(PositionAttribute)
	return attr.Value, ok
}

// CreateIcon builds the immutable icon. A missing material leaves
// Icon.Material empty.
func (s *IconSettings) CreateIcon() *menu.Icon {
	icon := &menu.Icon{Amount: DefaultAmount}

	if attr, ok := s.attributes[AttrMaterial].(MaterialAttribute); ok {
		icon.Material = attr.Item.Material
		icon.Durability = attr.Item.Durability
	}
	if attr, ok := s.attributes[AttrDurability].(DurabilityAttribute); ok {
		icon.Durability = attr.Value
	}
	if attr, ok := s.attributes[AttrAmount].(AmountAttribute); ok {
		icon.Amount = attr.Value
	}
	if attr, ok := s.attributes[AttrName].(NameAttribute); ok {
		icon.Name = attr.Value
	}
	if attr, ok := s.attributes[AttrLore].(LoreAttribute); ok {
		icon.Lore = attr.Lines
	}
	if attr, ok := s.attributes[AttrActions].(ActionsAttribute); ok {
		icon.Actions = attr.Actions
	}
	if attr, ok := s.attributes[AttrPermission].(PermissionAttribute); ok {
		icon.Permission = attr.Value
	}
	if attr, ok := s.attributes[AttrPermissionMessage].(PermissionMessageAttribute); ok {
		icon.PermissionMessage = attr.Value
	}
	if attr, ok := s.attributes[AttrKeepOpen].(KeepOpenAttribute); ok {
		icon.KeepOpen = attr.Value
	}

	return icon
}

func failedLine(err error) string {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Input
	}
	return err.Error()
}
