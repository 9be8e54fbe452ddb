// file: internals/helpers/status.go
package helper

// Status token yang dibawa di body response, dipakai frontend untuk menampilkan
// pesan hasil operasi.
const (
	StatusSuccess     = "success"
	StatusLoginError  = "loginerror"
	StatusFormError   = "formerror"
	StatusUserExist   = "userexist"
	StatusRollError   = "rollerror"
	StatusPhoneError  = "pherror"
	StatusPasswordChg = "pswdchg"
	StatusSelectError = "selecterror"
)

var statusMessages = map[string]string{
	StatusLoginError:  "Username or password incorrect",
	StatusFormError:   "Enter the details",
	StatusUserExist:   "The username already exists, please try a new one",
	StatusSuccess:     "The operation was successfull",
	StatusRollError:   "Roll number repeated",
	StatusPhoneError:  "Phone number is incorrect",
	StatusPasswordChg: "Password successfully changed",
	StatusSelectError: "Please select from the list",
}

// StatusMessage mengubah status token menjadi pesan untuk user.
// Token tidak dikenal → pesan generik.
func StatusMessage(token string) string {
	if msg, ok := statusMessages[token]; ok {
		return msg
	}
	return "Something went wrong"
}
