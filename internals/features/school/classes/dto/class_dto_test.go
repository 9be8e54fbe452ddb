// file: internals/features/school/classes/dto/class_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestCreateClassRequestNormalize(t *testing.T) {
	req := CreateClassRequest{ClassGrade: 7, ClassDivision: "b"}
	req.Normalize()
	assert.Equal(t, "B", req.ClassDivision)
}

func TestCreateClassRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateClassRequest
		wantErr bool
	}{
		{"valid", CreateClassRequest{ClassGrade: 7, ClassDivision: "A"}, false},
		{"grade nol", CreateClassRequest{ClassGrade: 0, ClassDivision: "A"}, true},
		{"grade di atas 12", CreateClassRequest{ClassGrade: 13, ClassDivision: "A"}, true},
		{"division dua huruf", CreateClassRequest{ClassGrade: 7, ClassDivision: "AB"}, true},
		{"division angka", CreateClassRequest{ClassGrade: 7, ClassDivision: "1"}, true},
		{"division kosong", CreateClassRequest{ClassGrade: 7, ClassDivision: ""}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassLabelRoundTrip(t *testing.T) {
	req := CreateClassRequest{ClassGrade: 9, ClassDivision: "c"}
	req.Normalize()
	m := req.ToModel()
	assert.Equal(t, "9:C", m.Label())
}
