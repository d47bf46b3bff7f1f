package req

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"giftai/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	validate = newValidator()                               //nolint:gochecknoglobals // skip
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях об ошибках используем имена полей из JSON.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("validation error: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(Describe(err)),
		)
	}

	return nil
}

// Describe turns validator errors into a message for the client: missing
// fields are listed first, fields with wrong values after them.
func Describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var missing, invalid []string

	for _, fieldErr := range validationErrors {
		name := fieldPath(fieldErr)

		if fieldErr.Tag() == "required" {
			missing = append(missing, name)
		} else {
			invalid = append(invalid, name)
		}
	}

	parts := make([]string, 0, 2) //nolint:mnd

	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}

	if len(invalid) > 0 {
		parts = append(parts, "Invalid fields: "+strings.Join(invalid, ", "))
	}

	return strings.Join(parts, "; ")
}

// fieldPath drops the root struct name from the namespace:
// "GenerateGiftRequest.budget" becomes "budget".
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()

	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return fieldErr.Field()
}
