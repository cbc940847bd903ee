package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xela07ax/mrp-console/internal/domain"
)

// Правила полей гоняются по СЫРЫМ значениям, до обрезки пробелов.
// Trim делается позже, в конвертации DTO -> модель. Порядок менять нельзя:
// регекспы заякорены и не допускают окружающий whitespace.
var (
	reName  = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,32}$`)
	rePass  = regexp.MustCompile(`^[a-zA-Z0-9_]{6,32}$`)
	reGroup = regexp.MustCompile(`^[a-zA-Z0-9_. ]{3,32}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей в сообщениях об ошибках — из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("uname", match(reName))
	_ = v.RegisterValidation("passwd", match(rePass))
	_ = v.RegisterValidation("grpname", match(reGroup))
	return v
}

func match(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// DecodeValid декодирует JSON-тело в dst и применяет правила полей.
// Структурная ошибка (битый синтаксис, не тот тип) — BadRequest.
// Нарушения правил не обрывают проверку: копятся по всем полям и
// уходят одним Validation-ответом.
func DecodeValid(r *http.Request, dst any) *domain.AppError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.BadRequest("invalid request body")
	}
	return Check(dst)
}

// Check применяет правила полей к уже декодированной структуре.
func Check(dst any) *domain.AppError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Internal("internal server error")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+": "+ruleMessage(fe.Tag()))
	}
	return domain.Validation("Input validation error: [" + strings.Join(msgs, ", ") + "]")
}

func ruleMessage(tag string) string {
	if tag == "required" {
		return "missing"
	}
	return "invalid"
}
