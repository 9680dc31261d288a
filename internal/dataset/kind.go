package dataset

import (
	"fmt"
	"strings"
)

// Kind represents the layout of a generated dataset
type Kind int

const (
	// KindVector lays the values out as a flat, space-delimited sequence
	KindVector Kind = iota + 1
)

var kindNames = map[Kind]string{
	KindVector: "vector",
}

// Kinds returns the supported kinds in declaration order
func Kinds() []Kind {
	return []Kind{KindVector}
}

// KindNames returns the names of the supported kinds
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name into a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}

	quoted := make([]string, 0, len(kindNames))
	for _, name := range KindNames() {
		quoted = append(quoted, "'"+name+"'")
	}
	return 0, fmt.Errorf("invalid choice: '%s' (choose from %s)", s, strings.Join(quoted, ", "))
}
