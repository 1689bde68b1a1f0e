// Package status defines the lifecycle states shared by organizations and
// user accounts.
package status

const (
	Active    = "active"
	Inactive  = "inactive"
	Suspended = "suspended"
)

// Valid reports whether s is one of the known lifecycle states.
func Valid(s string) bool {
	switch s {
	case Active, Inactive, Suspended:
		return true
	}
	return false
}
