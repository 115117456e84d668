package validate

import (
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

// Collect builds an Errs from the non-nil checks, or nil when all pass.
func Collect(checks ...*ErrField) error {
	var errs Errs
	for _, c := range checks {
		if c != nil {
			errs = append(errs, *c)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
