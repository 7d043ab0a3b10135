package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate проверяет тела запросов по тегам validate.
// Тег msg у поля задает текст ошибки для клиента, тег msg_<правило>
// переопределяет его для конкретного правила (например msg_lte)
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate читает JSON тело запроса в dst и проверяет его.
// Возвращает ошибку с текстом, пригодным для ответа клиенту
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return validateStruct(dst)
}

func validateStruct(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.New("invalid request body")
	}

	first := fieldErrs[0]
	if msg := fieldMessage(dst, first.StructField(), first.Tag()); msg != "" {
		return errors.New(msg)
	}
	if first.Tag() == "required" {
		return fmt.Errorf("%s is required", first.Field())
	}
	return fmt.Errorf("%s is invalid", first.Field())
}

// fieldMessage возвращает текст ошибки поля верхнего уровня структуры:
// сначала тег msg_<rule>, затем общий тег msg
func fieldMessage(dst interface{}, structField, rule string) string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	field, ok := t.FieldByName(structField)
	if !ok {
		return ""
	}
	if msg := field.Tag.Get("msg_" + rule); msg != "" {
		return msg
	}
	return field.Tag.Get("msg")
}

// idParam читает числовой идентификатор из пути
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// intQuery читает необязательный числовой query параметр; пустое значение дает 0
func intQuery(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return value, nil
}
