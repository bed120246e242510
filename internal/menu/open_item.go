package menu

import (
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/material"
)

// ClickType is the set of clicks an open item reacts to.
type ClickType int

const (
	ClickLeft ClickType = iota + 1
	ClickRight
	ClickBoth
)

// ClickTypeFromOptions combines the left and right click switches. It
// reports false when neither is enabled.
func ClickTypeFromOptions(left, right bool) (ClickType, bool) {
	switch {
	case left && right:
		return ClickBoth, true
	case left:
		return ClickLeft, true
	case right:
		return ClickRight, true
	}
	return 0, false
}

// Matches reports whether the interaction is covered by the click type.
func (c ClickType) Matches(a domain.ClickAction) bool {
	switch c {
	case ClickLeft:
		return a.IsLeftClick()
	case ClickRight:
		return a.IsRightClick()
	case ClickBoth:
		return a.IsLeftClick() || a.IsRightClick()
	}
	return false
}

func (c ClickType) String() string {
	switch c {
	case ClickLeft:
		return "LEFT"
	case ClickRight:
		return "RIGHT"
	case ClickBoth:
		return "BOTH"
	}
	return "NONE"
}

// OpenItem binds a held item and click type to a menu. It is a comparable
// value used directly as a map key. With AnyDurability set, Durability is
// always zero so equal bindings compare equal.
type OpenItem struct {
	Material      material.Material
	Durability    int
	AnyDurability bool
	Click         ClickType
}

// NewOpenItem builds the binding for an item spec. A spec without an
// explicit durability matches any durability.
func NewOpenItem(spec material.ItemSpec, click ClickType) OpenItem {
	item := OpenItem{Material: spec.Material, Click: click, AnyDurability: !spec.ExplicitDurability}
	if spec.ExplicitDurability {
		item.Durability = spec.Durability
	}
	return item
}

// Matches reports whether the held item and interaction trigger the binding.
func (o OpenItem) Matches(held domain.HeldItem, a domain.ClickAction) bool {
	mat, ok := material.Match(held.Material)
	if !ok || mat != o.Material {
		return false
	}
	if !o.AnyDurability && held.Durability != o.Durability {
		return false
	}
	return o.Click.Matches(a)
}
