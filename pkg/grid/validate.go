package grid

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("grid_align", func(fl validator.FieldLevel) bool {
			return Align(fl.Field().Int()).Valid()
		})

		_ = v.RegisterValidation("grid_justify", func(fl validator.FieldLevel) bool {
			return Justify(fl.Field().Int()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the declared ranges of a column and of its overrides.
func (c ColumnSpec) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	for bp, override := range c.Responsive {
		if !bp.Valid() {
			return antuierrors.NewInvalidSpecError("responsive", int(bp), "unknown breakpoint")
		}
		if len(override.Responsive) > 0 {
			return antuierrors.NewInvalidSpecError("responsive."+bp.String(), nil, "overrides cannot be nested")
		}
	}
	return nil
}

// Validate checks gutter, align, justify and the breakpoint table.
func (r RowSpec) Validate() error {
	if err := validatorInstance().Struct(r); err != nil {
		return convertValidationError(err)
	}
	for bp := range r.Gutter.Responsive {
		if !bp.Valid() {
			return antuierrors.NewInvalidSpecError("gutter.responsive", int(bp), "unknown breakpoint")
		}
	}
	return r.Breakpoints.Validate()
}

// Validate checks every column and prefixes errors with the column index.
func Validate(cols []ColumnSpec) error {
	for i, col := range cols {
		if err := col.Validate(); err != nil {
			return prefixField(fmt.Sprintf("columns[%d]", i), err)
		}
	}
	return nil
}

func checkEffective(index int, eff ColumnSpec, bp Breakpoint) error {
	span, offset := eff.SpanValue(), eff.OffsetValue()
	if span > 0 && span+offset > Columns {
		return antuierrors.NewInvalidSpecError(
			fmt.Sprintf("columns[%d]", index), span+offset,
			fmt.Sprintf("span plus offset exceeds %d at breakpoint %s", Columns, bp),
		)
	}
	return nil
}

func prefixField(prefix string, err error) error {
	var specErr *antuierrors.InvalidSpecError
	if !errors.As(err, &specErr) {
		return err
	}
	copied := *specErr
	if copied.Field == "" {
		copied.Field = prefix
	} else {
		copied.Field = prefix + "." + copied.Field
	}
	return &copied
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &antuierrors.InvalidSpecError{
			Field:   fieldName(ve),
			Value:   ve.Value(),
			Message: messageFor(ve),
			Err:     err,
		}
	}

	return antuierrors.WrapInvalidSpec("", err.Error(), err)
}

// fieldName drops the root struct name and lowercases the remaining path,
// e.g. "ColumnSpec.Responsive[md].Span" becomes "responsive[md].span".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "grid_align":
		return "unknown align"
	case "grid_justify":
		return "unknown justify"
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
