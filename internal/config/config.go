package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName = "manga-gateway"

	// DefaultFilename 실행 인자로 설정 파일이 지정되지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// DefaultDotEnvFilename 선택적으로 읽어 들이는 환경 변수 파일명입니다.
	DefaultDotEnvFilename = ".env"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다.
	// 예: MANGA_GATEWAY_CACHE__MANGA_TTL=5m -> cache.manga_ttl
	EnvPrefix = "MANGA_GATEWAY_"
)

// Load 기본 설정 파일을 읽어 설정을 로드합니다. 기본 설정 파일이 없으면 기본값과 환경 변수만으로 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 설정 파일을 읽어 설정을 로드합니다. 파일이 존재하지 않으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. .env 파일은 이미 설정된 프로세스 환경 변수를 덮어쓰지 않습니다.
	if err := godotenv.Load(DefaultDotEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("환경 변수 파일 로드 중 오류가 발생했습니다: '%s'", DefaultDotEnvFilename))
	}

	// 4. 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*AppConfig, error) {
	var cfg AppConfig

	conf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToSliceHook(","),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "json",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	return &cfg, nil
}

// stringToSliceHook 환경 변수로 전달된 "a,b" 형태의 값을 문자열 슬라이스로 변환합니다.
func stringToSliceHook(sep string) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}

		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

// normalizeEnvKey MANGA_GATEWAY_API__LISTEN_PORT -> api.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
