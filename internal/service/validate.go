package service

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"hawkerhero/internal/errors"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// tagRank orders failures so that missing fields are reported before length
// limits, and length limits before format checks.
var tagRank = map[string]int{
	"required":   0,
	"min":        1,
	"max":        2,
	"gte":        3,
	"lte":        4,
	"emailshape": 5,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

// Messages maps "field.tag", "field" or "tag" to the text shown to the user.
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	for _, key := range []string{field + "." + tag, field, tag} {
		if msg, ok := m[key]; ok {
			return msg
		}
	}
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required.", label(field))
	case "max", "lte":
		return fmt.Sprintf("%s is too long.", label(field))
	default:
		return fmt.Sprintf("%s is invalid.", label(field))
	}
}

func label(field string) string {
	field = strings.TrimSuffix(field, "_id")
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// checkInput validates in against its struct tags and returns the most
// significant failure as an *errors.ValidationError.
func checkInput(in interface{}, msgs Messages) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	first := fieldErrs[0]
	for _, fe := range fieldErrs[1:] {
		if rank(fe.Tag()) < rank(first.Tag()) {
			first = fe
		}
	}
	return errors.NewValidationError(first.Field(), msgs.lookup(first.Field(), first.Tag()))
}

func rank(tag string) int {
	if r, ok := tagRank[tag]; ok {
		return r
	}
	return len(tagRank)
}

// notFound converts a missing-row error into errors.ErrNotFound and wraps
// anything else with op.
func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func trimmed(s string) string { return strings.TrimSpace(s) }

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
