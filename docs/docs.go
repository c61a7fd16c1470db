// Package docs Manga Gateway API의 OpenAPI 문서를 swag에 등록합니다.
//
// swag init -g internal/service/api/service.go -o docs 로 재생성할 수 있습니다.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/manga/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Manga"],
                "summary": "만화 상세 조회",
                "parameters": [
                    {"type": "string", "description": "만화 ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "업스트림 세션 토큰 (user_acc 쿠키로도 전달 가능)", "name": "X-Session-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Manga"}},
                    "400": {"description": "잘못된 만화 ID", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "만화를 찾을 수 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "업스트림 요청 제한", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "업스트림 장애", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/manga/{id}/chapters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Manga"],
                "summary": "챕터 목록 조회",
                "parameters": [
                    {"type": "string", "description": "만화 ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "페이지 번호 (1부터)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "페이지 크기", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_ChapterSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/manga/{id}/chapters/{chapterId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Manga"],
                "summary": "챕터 조회",
                "parameters": [
                    {"type": "string", "description": "만화 ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "챕터 ID", "name": "chapterId", "in": "path", "required": true},
                    {"type": "boolean", "description": "이미지 크기 조회 여부", "name": "dimensions", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Chapter"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listing"],
                "summary": "만화 검색",
                "parameters": [
                    {"type": "string", "description": "검색어", "name": "q", "in": "query"},
                    {"type": "string", "description": "포함 장르 (쉼표 구분)", "name": "include", "in": "query"},
                    {"type": "string", "description": "제외 장르 (쉼표 구분)", "name": "exclude", "in": "query"},
                    {"type": "integer", "default": 1, "description": "페이지 번호", "name": "page", "in": "query"},
                    {"type": "string", "description": "정렬 (latest, topview, newest, az)", "name": "orderBy", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_SearchHit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listing"],
                "summary": "장르별 목록",
                "parameters": [
                    {"type": "string", "description": "포함 장르 (쉼표 구분)", "name": "include", "in": "query", "required": true},
                    {"type": "string", "description": "제외 장르 (쉼표 구분)", "name": "exclude", "in": "query"},
                    {"type": "integer", "default": 1, "description": "페이지 번호", "name": "page", "in": "query"},
                    {"type": "string", "description": "정렬 (latest, topview, newest, az)", "name": "orderBy", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_SearchHit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/genres/table": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Listing"],
                "summary": "장르 테이블",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/extract.Genre"}}}
                }
            }
        },
        "/api/v1/bookmarks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Bookmark"],
                "summary": "북마크 목록",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "페이지 번호", "name": "page", "in": "query"},
                    {"type": "string", "description": "업스트림 세션 토큰 (user_acc 쿠키로도 전달 가능)", "name": "X-Session-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Page-model_Bookmark"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "세션이 없거나 만료됨", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "서버 상태 확인",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/system.HealthResponse"}}}
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "버전 정보 조회",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/system.VersionResponse"}}}
            }
        }
    },
    "definitions": {
        "extract.Genre": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "model.ChapterSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "parentMangaId": {"type": "string"},
                "title": {"type": "string"},
                "number": {"type": "number"},
                "viewCount": {"type": "string"},
                "createdAt": {"type": "string"},
                "createdLabel": {"type": "string"}
            }
        },
        "model.Chapter": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "parentMangaId": {"type": "string"},
                "mangaTitle": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "prevChapterId": {"type": "string"},
                "nextChapterId": {"type": "string"},
                "dimensions": {"type": "array", "items": {"$ref": "#/definitions/model.ImageDimension"}},
                "readingMode": {"type": "string", "enum": ["strip", "paged"]}
            }
        },
        "model.ImageDimension": {
            "type": "object",
            "properties": {"url": {"type": "string"}, "width": {"type": "integer"}, "height": {"type": "integer"}}
        },
        "model.Manga": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "storyId": {"type": "string"},
                "storyData": {"type": "string"},
                "titles": {"type": "object", "additionalProperties": {"type": "string"}},
                "authors": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "coverImageUrl": {"type": "string"},
                "score": {"type": "number"},
                "viewCount": {"type": "string"},
                "chapters": {"type": "array", "items": {"$ref": "#/definitions/model.ChapterSummary"}},
                "fetchedAt": {"type": "string"}
            }
        },
        "model.Bookmark": {
            "type": "object",
            "properties": {
                "bookmarkId": {"type": "string"},
                "deleteToken": {"type": "string"},
                "storyId": {"type": "string"},
                "mangaId": {"type": "string"},
                "storyName": {"type": "string"},
                "image": {"type": "string"},
                "upToDate": {"type": "boolean"}
            }
        },
        "model.SearchHit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "coverImageUrl": {"type": "string"},
                "latestChapterLabel": {"type": "string"},
                "author": {"type": "string"},
                "viewCount": {"type": "string"}
            }
        },
        "model.Page-model_ChapterSummary": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/model.ChapterSummary"}}, "totalPages": {"type": "integer"}}
        },
        "model.Page-model_SearchHit": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/model.SearchHit"}}, "totalPages": {"type": "integer"}}
        },
        "model.Page-model_Bookmark": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/model.Bookmark"}}, "totalPages": {"type": "integer"}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"result": {"type": "string", "example": "error"}, "data": {"type": "string"}}
        },
        "system.DependencyStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "message": {"type": "string"}, "entries": {"type": "integer"}}
        },
        "system.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "integer"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/system.DependencyStatus"}}
            }
        },
        "system.VersionResponse": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "commit": {"type": "string"},
                "build_date": {"type": "string"},
                "build_number": {"type": "string"},
                "go_version": {"type": "string"},
                "os": {"type": "string"},
                "arch": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Manga Gateway API",
	Description:      "스크래핑 기반 만화 메타데이터, 챕터, 검색, 북마크를 정형화된 JSON으로 제공하는 게이트웨이 API입니다.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
