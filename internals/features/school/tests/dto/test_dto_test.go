// file: internals/features/school/tests/dto/test_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func TestCreateTestRequestParseDate(t *testing.T) {
	req := CreateTestRequest{TestName: "UTS", Date: "2026-09-01", TotalMarks: 100}
	d, err := req.ParseDate()
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", time.Time(d).Format("2006-01-02"))

	req.Date = "01-09-2026"
	_, err = req.ParseDate()
	assert.Error(t, err)
}

func TestCreateTestRequestValidation(t *testing.T) {
	valid := CreateTestRequest{TestName: "UTS", Date: "2026-09-01", TotalMarks: 100}
	assert.NoError(t, validate.Struct(valid))

	noDate := valid
	noDate.Date = ""
	assert.Error(t, validate.Struct(noDate))

	badDate := valid
	badDate.Date = "2026/09/01"
	assert.Error(t, validate.Struct(badDate))

	zeroTotal := valid
	zeroTotal.TotalMarks = 0
	assert.Error(t, validate.Struct(zeroTotal))
}
