// file: internals/helpers/status_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{StatusSuccess, "The operation was successfull"},
		{StatusLoginError, "Username or password incorrect"},
		{StatusFormError, "Enter the details"},
		{StatusUserExist, "The username already exists, please try a new one"},
		{StatusRollError, "Roll number repeated"},
		{StatusPhoneError, "Phone number is incorrect"},
		{StatusPasswordChg, "Password successfully changed"},
		{StatusSelectError, "Please select from the list"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusMessage(tc.token), "token=%s", tc.token)
	}
}

func TestStatusMessageUnknownToken(t *testing.T) {
	assert.Equal(t, "Something went wrong", StatusMessage("nope"))
	assert.Equal(t, "Something went wrong", StatusMessage(""))
}
