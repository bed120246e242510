// Package material resolves user-typed material names against the fixed
// vocabulary and parses "material[:durability][, amount]" item specs.
package material

import (
	"strconv"
	"strings"

	"github.com/osse101/chestmenus/internal/domain"
)

// Material is a canonical, upper-case material name such as GOLDEN_APPLE.
type Material string

// Air is the empty material; it is never a valid item to hold or give.
const Air Material = "AIR"

// byLookupKey maps normalised names to canonical materials.
var byLookupKey = func() map[string]Material {
	m := make(map[string]Material, len(vocabulary))
	for _, mat := range vocabulary {
		m[lookupKey(string(mat))] = mat
	}
	return m
}()

// lookupKey ignores case and the separators users tend to mix up.
func lookupKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Match looks up a material by name. "Golden Apple", "golden_apple" and
// "GOLDENAPPLE" all resolve to GOLDEN_APPLE.
func Match(name string) (Material, bool) {
	mat, ok := byLookupKey[lookupKey(strings.TrimSpace(name))]
	return mat, ok
}

// Parse resolves a material name or fails with an UnknownMaterial ParseError.
func Parse(name string) (Material, error) {
	mat, ok := Match(name)
	if !ok {
		return "", domain.NewParseError(domain.UnknownMaterial, name, "")
	}
	return mat, nil
}

// IsAir reports whether the material is the empty material.
func (m Material) IsAir() bool {
	return m == Air
}

func (m Material) String() string {
	return string(m)
}

// ItemSpec is a parsed "material[:durability][, amount]" value.
type ItemSpec struct {
	Material           Material
	Durability         int
	ExplicitDurability bool
	Amount             int
}

// ParseItemSpec parses an item spec. When allowAmount is false a ", amount"
// suffix is rejected.
func ParseItemSpec(raw string, allowAmount bool) (ItemSpec, error) {
	spec := ItemSpec{Amount: 1}
	input := strings.TrimSpace(raw)

	if idx := strings.IndexByte(input, ','); idx >= 0 {
		if !allowAmount {
			return ItemSpec{}, domain.NewParseError(domain.InvalidAmount, raw, ErrMsgAmountNotAllowed)
		}
		amountStr := strings.TrimSpace(input[idx+1:])
		amount, err := strconv.Atoi(amountStr)
		if err != nil || amount <= 0 {
			return ItemSpec{}, domain.NewParseError(domain.InvalidAmount, amountStr, ErrMsgAmountPositive)
		}
		spec.Amount = amount
		input = strings.TrimSpace(input[:idx])
	}

	if idx := strings.IndexByte(input, ':'); idx >= 0 {
		durabilityStr := strings.TrimSpace(input[idx+1:])
		durability, err := ParseDurability(durabilityStr)
		if err != nil {
			return ItemSpec{}, err
		}
		spec.Durability = durability
		spec.ExplicitDurability = true
		input = strings.TrimSpace(input[:idx])
	}

	mat, err := Parse(input)
	if err != nil {
		return ItemSpec{}, err
	}
	spec.Material = mat

	return spec, nil
}

// ParseDurability parses a durability value in [0, MaxDurability].
func ParseDurability(raw string) (int, error) {
	durability, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || durability < 0 || durability > MaxDurability {
		return 0, domain.NewParseError(domain.InvalidDurability, raw, ErrMsgDurabilityRange)
	}
	return durability, nil
}

// CheckNotAir fails when the item is the empty material.
func (s ItemSpec) CheckNotAir() error {
	if s.Material.IsAir() {
		return domain.NewParseError(domain.AirNotAllowed, s.Material.String(), "")
	}
	return nil
}
