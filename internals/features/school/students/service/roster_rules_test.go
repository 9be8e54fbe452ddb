// file: internals/features/school/students/service/roster_rules_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone int64
		want  bool
	}{
		{"batas bawah", 1_000_000_000, true},
		{"batas atas", 9_999_999_999, true},
		{"nomor biasa", 9_876_543_210, true},
		{"sembilan digit", 999_999_999, false},
		{"sebelas digit", 10_000_000_000, false},
		{"nol", 0, false},
		{"negatif", -9_876_543_210, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidPhone(tc.phone))
		})
	}
}

func TestDuplicateRoll(t *testing.T) {
	roll, dup := DuplicateRoll([]int{1, 2, 3, 2, 4})
	assert.True(t, dup)
	assert.Equal(t, 2, roll)

	_, dup = DuplicateRoll([]int{1, 2, 3})
	assert.False(t, dup)

	_, dup = DuplicateRoll(nil)
	assert.False(t, dup)

	roll, dup = DuplicateRoll([]int{7, 7})
	assert.True(t, dup)
	assert.Equal(t, 7, roll)
}

func TestMissingTestIDs(t *testing.T) {
	t1 := uuid.New()
	t2 := uuid.New()
	t3 := uuid.New()
	classTests := []uuid.UUID{t1, t2, t3}

	// kelas punya M test, k sudah ada → backfill tepat M-k row
	missing := MissingTestIDs(classTests, []uuid.UUID{t2})
	assert.Equal(t, []uuid.UUID{t1, t3}, missing)

	// belum punya sama sekali → semua test dibackfill
	assert.Equal(t, classTests, MissingTestIDs(classTests, nil))

	// sudah lengkap → tidak ada yang dibuat
	assert.Empty(t, MissingTestIDs(classTests, classTests))

	// kelas tanpa test
	assert.Empty(t, MissingTestIDs(nil, []uuid.UUID{t1}))
}

func TestRollTaken(t *testing.T) {
	existing := []int{1, 2, 5}

	assert.True(t, RollTaken(5, existing))
	assert.False(t, RollTaken(3, existing))
	// roll yang sama boleh dipakai di kelas lain: daftar existing selalu
	// discope per kelas oleh pemanggil
	assert.False(t, RollTaken(1, []int{}))
	assert.False(t, RollTaken(1, nil))
}
