package utils

import "strings"

// ColorChar is the section sign the game client uses to start a formatting code.
const ColorChar = '§'

// AltColorChar is the character users type in configuration files instead of ColorChar.
const AltColorChar = '&'

const colorCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRr"

// AddColors translates &-prefixed formatting codes into section-sign codes.
// "&&" is not special; an & followed by anything that is not a code is kept as-is.
func AddColors(text string) string {
	if !strings.ContainsRune(text, AltColorChar) {
		return text
	}

	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == AltColorChar && strings.ContainsRune(colorCodes, runes[i+1]) {
			runes[i] = ColorChar
			runes[i+1] = toLowerASCII(runes[i+1])
		}
	}
	return string(runes)
}

// AddColorsToAll applies AddColors to every line.
func AddColorsToAll(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = AddColors(line)
	}
	return out
}

// StripColors removes section-sign formatting codes.
func StripColors(text string) string {
	if !strings.ContainsRune(text, ColorChar) {
		return text
	}

	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == ColorChar && i+1 < len(runes) && strings.ContainsRune(colorCodes, runes[i+1]) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// TruncateRunes cuts text to at most max runes.
func TruncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
