package client

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request holds the query parameters of a calculator call. Zero values are left
// out of the query so the API applies its own defaults.
type Request struct {
	LastPeriod   string `json:"last_period" validate:"required,datetime=2006-01-02"`
	CycleLength  int    `json:"cycle_length" validate:"omitempty,min=21,max=35"`
	PeriodLength int    `json:"period_length" validate:"omitempty,min=2,max=10"`
	Cycles       int    `json:"cycles" validate:"omitempty,min=1,max=12"`
}

// ValidationError lists every parameter that failed validation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

var validationMessages = map[string]string{
	"required": "required parameter [%s] is missing",
	"datetime": "parameter [%s] must be a valid date (yyyy-MM-dd)",
	"min":      "parameter [%s] must be at least %s",
	"max":      "parameter [%s] must be at most %s",
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func (request Request) Validate() error {
	err := requestValidator.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		format, ok := validationMessages[fieldErr.Tag()]
		if !ok {
			messages = append(messages, fmt.Sprintf("parameter [%s] failed %s validation", fieldErr.Field(), fieldErr.Tag()))
			continue
		}
		if strings.Count(format, "%s") == 2 {
			messages = append(messages, fmt.Sprintf(format, fieldErr.Field(), fieldErr.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf(format, fieldErr.Field()))
	}
	return &ValidationError{Errors: messages}
}

type queryParam struct {
	name  string
	value string
}

func (request Request) params() []queryParam {
	return []queryParam{
		{name: "last_period", value: request.LastPeriod},
		{name: "cycle_length", value: nonZeroInt(request.CycleLength)},
		{name: "period_length", value: nonZeroInt(request.PeriodLength)},
		{name: "cycles", value: nonZeroInt(request.Cycles)},
	}
}

// QueryParams returns the non-zero parameters keyed by their wire names.
func (request Request) QueryParams() url.Values {
	values := url.Values{}
	for _, param := range request.params() {
		if param.value == "" {
			continue
		}
		values.Set(param.name, param.value)
	}
	return values
}

func nonZeroInt(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
