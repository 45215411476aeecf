package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"movieapi/errs"
	"movieapi/movie"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
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
	_ = v.RegisterValidation("genre", validateGenre)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errs.Errorf(errs.EINVALID, "validation error")
		}
		issues := make([]errs.Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, errs.Issue{
				Path:    issuePath(fe),
				Code:    fe.Tag(),
				Message: issueMessage(fe),
			})
		}
		return errs.Invalid("validation error", issues)
	}
	return nil
}

func validateGenre(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return movie.Genre(fl.Field().String()).Valid()
}

// issuePath turns "CreateMovieRequest.genre[1]" into ["genre", "1"].
func issuePath(fe validator.FieldError) []string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	var path []string
	for _, part := range strings.Split(ns, ".") {
		name, index, found := strings.Cut(part, "[")
		path = append(path, name)
		if found {
			path = append(path, strings.TrimSuffix(index, "]"))
		}
	}
	return path
}

func issueMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if kind == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if kind == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s item(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "genre":
		names := make([]string, 0, len(movie.Genres()))
		for _, g := range movie.Genres() {
			names = append(names, string(g))
		}
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
