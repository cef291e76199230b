package employee

import (
	"fmt"
	"regexp"

	employeeerrors "github.com/Jamesakeluru/IHRIS/internal/employee/errors"
)

// Employee codes are a fixed 3-letter prefix plus a zero-padded sequence.
// The sequence value comes from the atomic counter table, never from
// parsing the previous code.
const (
	CodePrefix      = "EMP"
	CodeDigits      = 3
	CodeCounterType = "employee_code"
)

var codeShape = regexp.MustCompile(fmt.Sprintf(`^%s\d{%d}$`, CodePrefix, CodeDigits))

// FormatCode renders sequence value n as an employee code. A value that no
// longer fits the padded width is rejected instead of silently widening.
func FormatCode(n int64) (string, error) {
	if n < 1 {
		return "", employeeerrors.ErrCodeSequenceExhausted
	}
	code := fmt.Sprintf("%s%0*d", CodePrefix, CodeDigits, n)
	if !codeShape.MatchString(code) {
		return "", employeeerrors.ErrCodeSequenceExhausted
	}
	return code, nil
}

// ValidCode reports whether s has the exact expected code shape.
func ValidCode(s string) bool {
	return codeShape.MatchString(s)
}
