// file: internals/features/notifications/absentees/service/absentee_notifier.go
package service

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
)

/* ======================================================
   Absentee notifier
   Kirim SMS ke wali setiap student yang tercatat absen
   hari ini. Gateway-nya HTTP GET sederhana; satu nomor
   gagal tidak membatalkan sisanya (log-and-continue).
====================================================== */

type Absentee struct {
	StudentName string
	Phone       int64
}

type NotifyResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// AbsenteesToday mengambil student yang is_present=false hari ini.
func AbsenteesToday(db *gorm.DB) ([]Absentee, error) {
	today := time.Now().Format("2006-01-02")

	var rows []Absentee
	err := db.Table("attendances").
		Select("students.student_name AS student_name, students.student_phone AS phone").
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id").
		Where("attendances.attendance_date = ? AND attendances.attendance_is_present = ?", today, false).
		Order("students.student_roll_no").
		Scan(&rows).Error
	return rows, err
}

// NotifyAbsentees mengirim SMS satu per satu ke wali absentee hari ini.
func NotifyAbsentees(db *gorm.DB) (NotifyResult, error) {
	absentees, err := AbsenteesToday(db)
	if err != nil {
		return NotifyResult{}, err
	}

	today := time.Now()
	client := &http.Client{Timeout: 10 * time.Second}
	var result NotifyResult
	for _, a := range absentees {
		if err := sendSMS(client, a.Phone, AbsenceMessage(a.StudentName, today)); err != nil {
			log.Printf("[ABSENTEE-SMS] gagal kirim ke %d: %v", a.Phone, err)
			result.Failed++
			continue
		}
		result.Sent++
	}
	return result, nil
}

// AbsenceMessage menyusun isi SMS untuk wali: nama student + tanggal absen.
func AbsenceMessage(studentName string, day time.Time) string {
	return fmt.Sprintf("Dear Parent, your ward %s was absent from school on %s.",
		studentName, day.Format("2006-01-02"))
}

func sendSMS(client *http.Client, phone int64, message string) error {
	params := url.Values{}
	params.Set("uname", configs.SMSUsername)
	params.Set("pwd", configs.SMSPassword)
	params.Set("senderid", configs.SMSSenderID)
	params.Set("to", strconv.FormatInt(phone, 10))
	params.Set("msg", message)
	params.Set("route", configs.SMSRoute)

	resp, err := client.Get(configs.SMSBaseURL + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sms gateway status %d", resp.StatusCode)
	}
	return nil
}
