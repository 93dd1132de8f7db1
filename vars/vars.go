package vars

import "strings"

// StrToBool parses switch arguments. Unknown strings are false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1", "on":
		return true
	}
	return false
}
