package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
	"github.com/alexisbeaulieu97/antui/pkg/grid"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	docIDPattern  = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("doc_id", func(fl validator.FieldLevel) bool {
			return docIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("breakpoint", func(fl validator.FieldLevel) bool {
			_, err := grid.ParseBreakpoint(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("align", func(fl validator.FieldLevel) bool {
			_, err := grid.ParseAlign(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("justify", func(fl validator.FieldLevel) bool {
			_, err := grid.ParseJustify(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			_, err := placement.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a document.
func Validate(doc *Document) error {
	if doc == nil {
		return antuierrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	rowIDs := make(map[string]struct{}, len(doc.Rows))
	for i, row := range doc.Rows {
		if _, exists := rowIDs[row.ID]; exists {
			return antuierrors.NewValidationError(fmt.Sprintf("rows[%d].id", i), fmt.Sprintf("duplicate row id %q", row.ID), nil)
		}
		rowIDs[row.ID] = struct{}{}
	}

	placementIDs := make(map[string]struct{}, len(doc.Placements))
	for i, p := range doc.Placements {
		if _, exists := placementIDs[p.ID]; exists {
			return antuierrors.NewValidationError(fmt.Sprintf("placements[%d].id", i), fmt.Sprintf("duplicate placement id %q", p.ID), nil)
		}
		placementIDs[p.ID] = struct{}{}
	}

	return nil
}

// convertValidationError normalizes validator errors into ValidationErrors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return antuierrors.NewValidationError(field, msg, err)
	}

	return antuierrors.NewValidationError("document", err.Error(), err)
}

// documentFieldName turns "Document.rows[0].columns[1].ColumnFields.span"
// into "rows[0].columns[1].span".
func documentFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, part := range parts {
		if part == "ColumnFields" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}
