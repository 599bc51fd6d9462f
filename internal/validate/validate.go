package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"newsportal/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	_ = val.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	return val
}

// Struct проверяет структуру запроса по validate-тегам и превращает
// ошибки валидатора в одно читаемое сообщение.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("поле %s не проходит правило %s", fe.Field(), fe.Tag()))
		}
		return apperrors.Validationf("невалидный запрос: %s", strings.Join(parts, "; "))
	}
	return err
}
