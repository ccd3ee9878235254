package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"winequality/internal/explore"
)

var registerOnce sync.Once

// registerValidators adds the "column" tag to gin's validator. It accepts
// any spelling that resolves to a dataset column.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("column", func(fl validator.FieldLevel) bool {
			_, err := explore.Resolve(fl.Field().String())
			return err == nil
		})
	})
}

type scatterQuery struct {
	X string `form:"x" binding:"required,column"`
	Y string `form:"y" binding:"required,column"`
}

// bindProblems turns a binding error into one message per field.
func bindProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out = append(out, field+" is required")
		case "column":
			out = append(out, fmt.Sprintf("%s: unknown column %q", field, fe.Value()))
		default:
			out = append(out, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return out
}
