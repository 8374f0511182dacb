// Package validation holds the field-level validators run before every
// mutating request. Validators are pure: they take a parsed request body and
// return a Result describing which fields are wrong.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-playground/validator/v10"
)

// Result maps field names (as they appear in JSON) to messages.
type Result struct {
	Errors  map[string]string `json:"errors"`
	IsValid bool              `json:"isValid"`
}

// messages is keyed by field name, then by the failing validator tag.
type messages map[string]map[string]string

var validate = newValidator()

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register validation tag %q: %v", tag, err))
		}
	}
	mustRegister("weburl", func(fl validator.FieldLevel) bool {
		return govalidator.IsURL(fl.Field().String())
	})
	mustRegister("skills", func(fl validator.FieldLevel) bool {
		return len(SplitSkills(fl.Field().String())) > 0
	})
	mustRegister("isdate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// SplitSkills turns "go, sql,,docker" into ["go" "sql" "docker"].
func SplitSkills(raw string) []string {
	skills := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func check(input any, table messages) Result {
	errs := make(map[string]string)

	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs["input"] = err.Error()
			return Result{Errors: errs}
		}
		for _, fe := range fieldErrs {
			field := fe.Field()
			if _, seen := errs[field]; seen {
				continue
			}
			errs[field] = table.lookup(field, fe.Tag())
		}
	}

	return Result{Errors: errs, IsValid: len(errs) == 0}
}

func (m messages) lookup(field, tag string) string {
	if byTag, ok := m[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "Invalid value"
}

// blank coerces whitespace-only strings to the empty string so they fail
// "required" the same way missing fields do.
func blank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
