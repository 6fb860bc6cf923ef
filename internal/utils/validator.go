package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"foodgram/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
)

func InitValidator() {
	if Validate != nil {
		return
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation("username", trans, func(ut ut.Translator) error {
		return ut.Add("username", "{0} may contain only letters, digits and @/./+/-/_", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("username", fe.Field())
		return t
	})

	Validate = v
	Translator = trans
}

// ValidationErrors converts the validator output into field-level messages
// keyed by the JSON path of the offending field.
func ValidationErrors(err error) domain.FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewFieldError(domain.NonFieldErrors, err.Error())
	}

	fieldErrs := domain.FieldErrors{}
	for _, fe := range verrs {
		fieldErrs.Add(fieldPath(fe.Namespace()), fe.Translate(Translator))
	}
	return fieldErrs
}

// fieldPath strips the root struct name: "RecipeRequest.ingredients[0].id" -> "ingredients[0].id".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
