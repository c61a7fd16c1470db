package extract

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

//go:embed genres.yaml
var embeddedGenres string

// Genre 장르 이름과 업스트림 내부 ID
type Genre struct {
	Name string `yaml:"name" json:"name"`
	ID   int    `yaml:"id" json:"id"`
}

// GenreTable 장르 이름 -> ID 매핑 테이블. 생성 이후 읽기 전용이므로 동시에 사용해도 안전합니다.
type GenreTable struct {
	ordered []Genre
	byKey   map[string]Genre
	byID    map[int]Genre
}

// LoadGenres YAML 형식의 장르 테이블을 읽습니다.
func LoadGenres(r io.Reader) (*GenreTable, error) {
	var doc struct {
		Genres []Genre `yaml:"genres"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "장르 테이블을 해석할 수 없습니다")
	}

	t := &GenreTable{
		ordered: make([]Genre, 0, len(doc.Genres)),
		byKey:   make(map[string]Genre, len(doc.Genres)),
		byID:    make(map[int]Genre, len(doc.Genres)),
	}
	for _, g := range doc.Genres {
		key := genreKey(g.Name)
		if key == "" || g.ID <= 0 {
			return nil, apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장르 항목이 올바르지 않습니다: %q (id=%d)", g.Name, g.ID))
		}
		if _, dup := t.byKey[key]; dup {
			return nil, apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 장르 이름입니다: %q", g.Name))
		}
		t.ordered = append(t.ordered, g)
		t.byKey[key] = g
		t.byID[g.ID] = g
	}

	return t, nil
}

var defaultGenres = sync.OnceValue(func() *GenreTable {
	t, err := LoadGenres(strings.NewReader(embeddedGenres))
	if err != nil {
		panic(fmt.Sprintf("내장 장르 테이블 로드 실패: %v", err))
	}
	return t
})

// DefaultGenres 바이너리에 내장된 장르 테이블
func DefaultGenres() *GenreTable {
	return defaultGenres()
}

// GenreIDs 내장 테이블로 장르 이름 목록을 ID 목록으로 변환합니다.
func GenreIDs(names []string) []int {
	return DefaultGenres().IDs(names)
}

// genreKey "Martial Arts", "martial-arts", "MartialArts" -> "martial_arts"
func genreKey(name string) string {
	return strcase.ToSnake(strings.TrimSpace(name))
}

// Lookup 대소문자, 공백, 하이픈 표기 차이를 무시하고 장르를 찾습니다.
func (t *GenreTable) Lookup(name string) (Genre, bool) {
	g, ok := t.byKey[genreKey(name)]
	return g, ok
}

// ByID ID로 장르를 찾습니다.
func (t *GenreTable) ByID(id int) (Genre, bool) {
	g, ok := t.byID[id]
	return g, ok
}

// IDs 이름 목록을 입력 순서대로 ID로 변환합니다. 알 수 없는 이름은 에러 없이 제외하고, 중복은 한 번만 포함합니다.
func (t *GenreTable) IDs(names []string) []int {
	ids := make([]int, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		g, ok := t.Lookup(name)
		if !ok {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		ids = append(ids, g.ID)
	}
	return ids
}

// All 테이블에 정의된 순서대로 모든 장르를 반환합니다.
func (t *GenreTable) All() []Genre {
	out := make([]Genre, len(t.ordered))
	copy(out, t.ordered)
	return out
}
