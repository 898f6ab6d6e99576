package validation

import (
	"errors"
	"reflect"
	"strings"

	apperrors "company-directory/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator runs struct-tag rules and turns failures into field/message pairs
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English messages
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so errors line up with form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	// number is digits only; say so instead of "must be a valid number"
	_ = v.RegisterTranslation("number", trans,
		func(ut ut.Translator) error {
			return ut.Add("number", "{0} must contain only digits", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("number", fe.Field())
			return msg
		},
	)

	return &Validator{validate: v, trans: trans}
}

// Struct validates s. It returns nil when every rule passes.
func (v *Validator) Struct(s interface{}) apperrors.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ValidationErrors{{Field: "", Message: err.Error()}}
	}

	out := make(apperrors.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out.Add(fe.Field(), fe.Translate(v.trans))
	}
	return out
}

// UniqueMessage is the message reported when a value is already taken
func UniqueMessage(field string) string {
	return field + " has already been taken"
}

// ExistsMessage is the message reported when a referenced record does not exist
func ExistsMessage(field string) string {
	return "selected " + field + " is invalid"
}
