// Package validator 요청 DTO 검증에 사용하는 go-playground/validator 싱글톤과 한국어 에러 메시지 변환을 제공합니다.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 초기화된 validator 인스턴스를 반환합니다. 여러 고루틴에서 동시에 호출해도 안전합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()

		// 에러 메시지에 korean 태그 값을 필드명으로 사용합니다. 없으면 구조체 필드명을 씁니다.
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return instance
}

// Struct 구조체를 validate 태그 규칙에 따라 검증합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 첫 번째 검증 실패 항목을 사용자 친화적인 한국어 메시지로 변환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	name := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", name)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", name, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s는 [%s] 중 하나여야 합니다", name, fe.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", name, fe.Tag())
	}
}
