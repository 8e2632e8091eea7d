package user

import "strings"

type Membership string

const (
	MembershipStudent  Membership = "Student"
	MembershipEmployee Membership = "Employee"
	MembershipFaculty  Membership = "Faculty"
	MembershipGuest    Membership = "Guest"
)

var knownMemberships = []Membership{MembershipStudent, MembershipEmployee, MembershipFaculty, MembershipGuest}

// ParseMembership canonicalizes the known tiers, keeps other labels as typed
// and maps blank input to Guest.
func ParseMembership(s string) Membership {
	s = strings.TrimSpace(s)
	if s == "" {
		return MembershipGuest
	}
	for _, m := range knownMemberships {
		if strings.EqualFold(s, string(m)) {
			return m
		}
	}
	return Membership(s)
}

func (m Membership) String() string {
	return string(m)
}
