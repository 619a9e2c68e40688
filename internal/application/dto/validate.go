package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-consola/internal/domain"
)

// schemaValidate valida los esquemas de petición y respuesta del backend.
var schemaValidate *validator.Validate

func init() {
	schemaValidate = validator.New()

	// Los mensajes usan el nombre JSON del campo, que es el que conoce el backend.
	schemaValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// decimal.Decimal se valida como float64 (gte, gt, lte…).
	schemaValidate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// FieldError error de validación de un campo, con mensaje apto para mostrar al usuario.
// Envuelve domain.ErrInvalidInput.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return domain.ErrInvalidInput }

// Validate valida un esquema con sus etiquetas `validate`. El primer campo inválido
// se devuelve como *FieldError.
func Validate(s any) error {
	err := schemaValidate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{Field: fe.Field(), Message: messageFor(fe)}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func messageFor(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", f)
	case "required_if":
		return fmt.Sprintf("El campo %s es obligatorio para este rol.", f)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un email válido.", f)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Debe especificar al menos %s elemento(s) en %s.", fe.Param(), f)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres.", f, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser al menos %s.", f, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s admite como máximo %s caracteres.", f, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser como máximo %s.", f, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s.", f, fe.Param())
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual que %s.", f, fe.Param())
	case "ne":
		return fmt.Sprintf("El campo %s no puede ser %s.", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s.", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("El campo %s no es válido.", f)
	}
}
