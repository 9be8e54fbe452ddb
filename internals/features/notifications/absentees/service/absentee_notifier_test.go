// file: internals/features/notifications/absentees/service/absentee_notifier_test.go
package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/configs"
)

func TestAbsenceMessage(t *testing.T) {
	day := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	msg := AbsenceMessage("Budi Santoso", day)
	assert.Equal(t,
		"Dear Parent, your ward Budi Santoso was absent from school on 2026-09-01.",
		msg)
	// pesan wajib menyebut student dan tanggal absennya
	assert.Contains(t, msg, "Budi Santoso")
	assert.Contains(t, msg, "2026-09-01")
}

func TestNextRunAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// jam notifikasi masih di depan: hari ini
	next := nextRunAt(now, 18)
	assert.Equal(t, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), next)

	// jam notifikasi sudah lewat: besok
	next = nextRunAt(now, 6)
	assert.Equal(t, time.Date(2026, 9, 2, 6, 0, 0, 0, time.UTC), next)
}

func TestSendSMSBuildsGatewayQuery(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"uname":    q.Get("uname"),
			"pwd":      q.Get("pwd"),
			"senderid": q.Get("senderid"),
			"to":       q.Get("to"),
			"msg":      q.Get("msg"),
			"route":    q.Get("route"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	configs.SMSBaseURL = srv.URL
	configs.SMSUsername = "school"
	configs.SMSPassword = "secret"
	configs.SMSSenderID = "ThreeG"
	configs.SMSRoute = "T"

	client := &http.Client{Timeout: 2 * time.Second}
	err := sendSMS(client, 9_876_543_210, AbsenceMessage("Budi", time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "school", gotQuery["uname"])
	assert.Equal(t, "secret", gotQuery["pwd"])
	assert.Equal(t, "ThreeG", gotQuery["senderid"])
	assert.Equal(t, "9876543210", gotQuery["to"])
	assert.Equal(t, "T", gotQuery["route"])
	assert.Contains(t, gotQuery["msg"], "Budi")
}

func TestSendSMSGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	configs.SMSBaseURL = srv.URL
	client := &http.Client{Timeout: 2 * time.Second}
	err := sendSMS(client, 9_876_543_210, "msg")
	assert.Error(t, err)
}
