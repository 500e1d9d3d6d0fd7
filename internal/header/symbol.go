package header

import "regexp"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateSymbol checks that s can serve as the include-guard prefix, the
// size macro prefix and the array identifier of a C header.
func ValidateSymbol(s string) error {
	switch {
	case s == "":
		return &SymbolError{Symbol: s, Reason: "symbol cannot be empty"}
	case s[0] >= '0' && s[0] <= '9':
		return &SymbolError{Symbol: s, Reason: "symbol must not begin with a digit"}
	case !identRe.MatchString(s):
		return &SymbolError{Symbol: s, Reason: "symbol must only contain letters, digits, and underscores"}
	}
	return nil
}
