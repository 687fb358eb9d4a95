package enum

// Flag algebra over member values. These operations never create members and
// never touch a Set; results that are not booleans are raw int32 masks. A nil
// operand contributes zero bits, mirroring an absent member, except in
// HasFlag where an absent flag fails the subset test outright.

// SharesBit reports whether a and b have any value bit in common.
func SharesBit(a, b Member) bool { return memberValue(a)&memberValue(b) != 0 }

// Combine returns the union mask of a's and b's values.
func Combine(a, b Member) int32 { return memberValue(a) | memberValue(b) }

// Complement returns the bitwise negation of m's value.
func Complement(m Member) int32 { return ^memberValue(m) }

// HasFlag reports whether every value bit of flag is set in m. An absent
// flag matches nothing: a nil flag operand is false regardless of m.
func HasFlag(m, flag Member) bool {
	if isNilMember(flag) {
		return false
	}
	f := memberValue(flag)
	return memberValue(m)&f == f
}

func memberValue(m Member) int32 {
	if isNilMember(m) {
		return 0
	}
	return m.base().value
}
