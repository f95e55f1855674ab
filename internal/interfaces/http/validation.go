package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/domain"
)

var errEmptyBody = errors.New("cuerpo vacío")

// validate es seguro para uso concurrente y cachea la metadata de cada struct.
var validate = newValidator()

// newValidator reporta los campos con su nombre JSON.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseAndValidate decodifica el cuerpo JSON en out y aplica las etiquetas validate.
// Todo fallo cumple errors.Is(err, domain.ErrMalformedRequest).
func parseAndValidate(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRequest, errEmptyBody)
	}
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedRequest, err)
	}
	return nil
}

// validationMessage resume los campos inválidos para la respuesta.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "cuerpo inválido"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}
