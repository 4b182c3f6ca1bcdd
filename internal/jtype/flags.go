package jtype

import "strings"

// Flag is a bitset of declaration modifiers resolved during attribution.
type Flag uint16

const (
	FlagPublic Flag = 1 << iota
	FlagPrivate
	FlagProtected
	FlagStatic
	FlagFinal
	FlagAbstract
	FlagVarargs
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagPublic, "public"},
	{FlagPrivate, "private"},
	{FlagProtected, "protected"},
	{FlagStatic, "static"},
	{FlagFinal, "final"},
	{FlagAbstract, "abstract"},
	{FlagVarargs, "varargs"},
}

func (f Flag) Has(flag Flag) bool { return f&flag == flag }

func (f Flag) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, " ")
}

// ModifierFlag maps a modifier keyword to its flag.
func ModifierFlag(keyword string) (Flag, bool) {
	switch keyword {
	case "public":
		return FlagPublic, true
	case "private":
		return FlagPrivate, true
	case "protected":
		return FlagProtected, true
	case "static":
		return FlagStatic, true
	case "final":
		return FlagFinal, true
	case "abstract":
		return FlagAbstract, true
	}
	return 0, false
}
