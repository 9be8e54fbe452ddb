// file: internals/features/school/students/service/roster_rules.go
package service

/* ======================================================
   Aturan validasi roster student
====================================================== */

const (
	phoneMin = 1_000_000_000 // 10 digit
	phoneMax = 9_999_999_999
)

// ValidPhone: nomor telepon harus tepat 10 digit.
func ValidPhone(phone int64) bool {
	return phone >= phoneMin && phone <= phoneMax
}

// DuplicateRoll mencari roll number yang muncul lebih dari sekali dalam satu
// submission. Return roll yang duplikat dan true kalau ada.
func DuplicateRoll(rolls []int) (int, bool) {
	seen := make(map[int]struct{}, len(rolls))
	for _, roll := range rolls {
		if _, ok := seen[roll]; ok {
			return roll, true
		}
		seen[roll] = struct{}{}
	}
	return 0, false
}

// RollTaken: roll sudah dipakai student lain di kelas yang sama.
// existing = daftar roll student lain sekelas.
func RollTaken(roll int, existing []int) bool {
	for _, r := range existing {
		if r == roll {
			return true
		}
	}
	return false
}
