package dto

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator:
//
//	isodate: a strict YYYY-MM-DD calendar date
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("isodate", isoDate)
	})
	return err
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := valueobject.ParseDate(fl.Field().String())
	return err == nil
}

// OptionalDate parses s when present.
func OptionalDate(s *string) (*valueobject.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := valueobject.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
