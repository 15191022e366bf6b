package types

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidCourseName reports a course with an empty name.
var ErrInvalidCourseName = errors.New("course name must not be empty")

// CodeFallback is the derived code for names with no usable characters.
const CodeFallback = "COURSE"

// codeMaxLen caps derived course codes.
const codeMaxLen = 10

// Course groups tasks under a class. The ordered set of task IDs belonging
// to a course is not a field here: the local store maintains it as an
// explicit index keyed by CourseTasksKey, and the remote store keeps its own.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Owner       Owner     `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the writable fields of a course.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCourseName
	}
	if !c.Owner.Valid() {
		return ErrInvalidOwner
	}
	return nil
}

// DeriveCode builds a short display code from a course name: letters and
// digits only, upper-cased, truncated to ten characters. Codes are not
// unique; two courses named "Calculus I" and "Calculus II" share a prefix.
func DeriveCode(name string) string {
	code := make([]rune, 0, codeMaxLen)
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		code = append(code, unicode.ToUpper(r))
		if len(code) == codeMaxLen {
			break
		}
	}
	if len(code) == 0 {
		return CodeFallback
	}
	return string(code)
}
