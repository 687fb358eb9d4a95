package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/enumkit/pkg/enum"
)

// FilePermission members carry single-bit values plus one combined mask, the
// usual shape for flag-style enumerations.
type FilePermission struct{ enum.Entry }

var (
	filePermissions = enum.NewSet[*FilePermission]("file_permission")

	permRead  = filePermissions.MustRegister(&FilePermission{}, "Read", enum.WithValue(1))
	permWrite = filePermissions.MustRegister(&FilePermission{}, "Write", enum.WithValue(2))
	permExec  = filePermissions.MustRegister(&FilePermission{}, "Execute", enum.WithValue(4))
	permAll   = filePermissions.MustRegister(&FilePermission{}, "All", enum.WithValue(7))
)

func TestSharesBit(t *testing.T) {
	assert.False(t, enum.SharesBit(permRead, permWrite))
	assert.True(t, enum.SharesBit(permRead, permAll))
	assert.True(t, enum.SharesBit(permAll, permExec))
	assert.False(t, enum.SharesBit(nil, permRead))
	assert.False(t, enum.SharesBit(permRead, nil))
}

func TestCombine(t *testing.T) {
	assert.Equal(t, int32(3), enum.Combine(permRead, permWrite))
	assert.Equal(t, int32(7), enum.Combine(permAll, permExec))
	assert.Equal(t, int32(1), enum.Combine(nil, permRead))
	assert.Equal(t, int32(0), enum.Combine(nil, nil))
}

func TestComplement(t *testing.T) {
	assert.Equal(t, ^int32(1), enum.Complement(permRead))
	assert.Equal(t, ^int32(0), enum.Complement(nil))
}

func TestHasFlag(t *testing.T) {
	assert.True(t, enum.HasFlag(permAll, permRead))
	assert.True(t, enum.HasFlag(permAll, permAll))
	assert.False(t, enum.HasFlag(permRead, permWrite))
	assert.False(t, enum.HasFlag(permRead, permAll))

	// An absent flag matches nothing, no matter the left operand.
	assert.False(t, enum.HasFlag(permRead, nil))
	assert.False(t, enum.HasFlag(nil, nil))
	assert.False(t, enum.HasFlag(nil, permRead))
}

// TestFlagOpsWithTypedNil verifies a typed nil pointer behaves like an absent
// member rather than panicking.
func TestFlagOpsWithTypedNil(t *testing.T) {
	var missing *FilePermission

	assert.False(t, enum.SharesBit(missing, permRead))
	assert.Equal(t, int32(2), enum.Combine(missing, permWrite))
	assert.False(t, enum.HasFlag(permAll, missing))
}

// TestFlagOpsNeverTouchTheSet verifies combining values does not mint members.
func TestFlagOpsNeverTouchTheSet(t *testing.T) {
	before := filePermissions.Len()
	mask := enum.Combine(permRead, permExec)

	assert.Equal(t, int32(5), mask)
	assert.Equal(t, before, filePermissions.Len())
	_, ok := filePermissions.LookupValue(5)
	assert.False(t, ok)
}
