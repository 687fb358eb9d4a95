package enum

import "reflect"

// Equal reports whether a and b are the same enumeration member: the same
// concrete member type carrying the same numeric value. Members of different
// types never compare equal, whatever their values. A nil operand is equal
// only to another nil.
func Equal(a, b Member) bool {
	aNil, bNil := isNilMember(a), isNilMember(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.base().value == b.base().value
}
