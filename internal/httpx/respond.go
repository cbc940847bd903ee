package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/xela07ax/mrp-console/internal/domain"
)

// Null — явный sentinel «нет данных»: сериализуется как {}, а не как
// отсутствие ключа. Используется в ошибках и в side-effect ответах (delete).
type Null struct{}

// Payload — внутренний объект rslt конверта.
type Payload struct {
	Data any `json:"data"`
}

// APIResult — единый конверт всех ответов API, успешных и ошибочных.
// Имена полей — wire-контракт, менять нельзя.
type APIResult struct {
	Rslt          Payload `json:"rslt"`
	StatusMessage string  `json:"status_message"`
	StatusCode    int     `json:"status_code"`
}

func NewAPIResult(data any, msg string, code int) APIResult {
	return APIResult{
		Rslt:          Payload{Data: data},
		StatusMessage: msg,
		StatusCode:    code,
	}
}

// JSON — единственный путь, которым тело попадает в ответ.
// Хендлеры не пишут в ResponseWriter напрямую.
func JSON(w http.ResponseWriter, code int, data any, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(NewAPIResult(data, msg, code))
}

// Error переводит ошибку в конверт с Null-данными и фиксированным статусом.
func Error(w http.ResponseWriter, err error) {
	ae := domain.AsAppError(err)
	JSON(w, ae.Kind.HTTPStatus(), Null{}, ae.Message)
}
