package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/darkkaiser/manga-gateway/pkg/cronx"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 JSON 키 이름이 나오도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin "*" 또는 Scheme://Host[:Port] 형식만 허용합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	origin := strings.TrimSpace(fl.Field().String())
	if origin == "*" {
		return true
	}
	if origin == "" || strings.HasSuffix(origin, "/") {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") &&
		u.Hostname() != "" && u.Path == "" && u.RawQuery == "" && u.Fragment == "" && u.User == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

func (c *APIConfig) validateOrigins() error {
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, section string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 유효성 검증에 실패했습니다", section))
	}

	fe := validationErrors[0]
	key := section + "." + fe.Field()

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 cron 표현식이 올바르지 않습니다: '%v' (예: @every 1m, 0 */5 * * * *)", key, fe.Value()))
	case "http_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s는 http(s) URL이어야 합니다: '%v'", key, fe.Value()))
	case "required", "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정은 필수입니다", key))
	case "hostname_rfc1123|ip":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s에 올바르지 않은 호스트명이 있습니다: '%v'", key, fe.Value()))
	}

	if fe.StructField() == "ListenPort" {
		return apperrors.New(apperrors.InvalidInput, "웹 서비스 포트(api.listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}

	if fe.Param() != "" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다: '%v' (조건: %s=%s)", key, fe.Value(), fe.Tag(), fe.Param()))
	}
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다: '%v' (조건: %s)", key, fe.Value(), fe.Tag()))
}
