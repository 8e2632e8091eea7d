package transaction

import "strings"

type Type string

const (
	TypeBorrow Type = "borrow"
	TypeReturn Type = "return"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBorrow, TypeReturn:
		return true
	default:
		return false
	}
}

func ParseType(s string) Type {
	return Type(strings.ToLower(strings.TrimSpace(s)))
}
