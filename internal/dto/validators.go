package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return v.RegisterValidation("idlist", validateIDList)
}

// validateIDList backs the `idlist` tag.
func validateIDList(fl validator.FieldLevel) bool {
	list, ok := fl.Field().Interface().(IDList)
	if !ok {
		return false
	}
	return list.valid()
}
