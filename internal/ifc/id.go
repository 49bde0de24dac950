package ifc

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the STEP instance number of an entity, rendered as "#123".
type ID int

// String renders the ID the way it appears in a STEP file.
func (id ID) String() string {
	return "#" + strconv.Itoa(int(id))
}

// ParseID accepts "#123" or "123".
func ParseID(raw string) (ID, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("ifc: invalid entity id %q", raw)
	}
	return ID(n), nil
}

// Entity is anything addressable by a STEP instance number.
type Entity interface {
	EntityID() ID
}

// Logical is the IFC three-valued logical type.
type Logical int

const (
	False Logical = iota
	True
	Unknown
)

// String returns the STEP enumeration literal.
func (l Logical) String() string {
	switch l {
	case True:
		return ".T."
	case False:
		return ".F."
	default:
		return ".U."
	}
}

// ParseLogical accepts STEP literals (.T. .F. .U.) as well as the spelled-out
// forms used in fixtures. Matching is case-insensitive.
func ParseLogical(raw string) (Logical, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ".t.", "t", "true":
		return True, nil
	case ".f.", "f", "false":
		return False, nil
	case ".u.", "u", "unknown":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("ifc: invalid logical %q", raw)
}
