package permissions

import "strings"

// SplitExtra parses the comma separated extra grant column, dropping
// anything outside the permission domain.
func SplitExtra(raw string) []Permission {
	if raw == "" {
		return nil
	}
	var out []Permission
	for _, tok := range strings.Split(raw, ",") {
		p := Permission(strings.TrimSpace(tok))
		if Valid(p) {
			out = append(out, p)
		}
	}
	return out
}

// JoinExtra serializes validated grants back to the storage form. Unknown
// names are rejected rather than silently stored.
func JoinExtra(perms []Permission) (string, bool) {
	var names []string
	for _, p := range perms {
		if !Valid(p) {
			return "", false
		}
		names = append(names, string(p))
	}
	return strings.Join(names, ","), true
}
