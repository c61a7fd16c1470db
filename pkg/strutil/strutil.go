// Package strutil 스크래핑한 텍스트를 다듬기 위한 문자열 유틸리티를 제공합니다.
package strutil

import (
	"strings"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백(개행 포함)을 하나로 축약합니다.
// 예: "  hello \n  world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeMultiLineSpaces 각 줄을 정규화하고, 연속된 빈 줄은 하나로 축약합니다.
// 앞뒤의 빈 줄은 제거됩니다.
func NormalizeMultiLineSpaces(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var lines []string
	var lastEmpty bool
	for line := range strings.SplitSeq(s, "\n") {
		line = NormalizeSpaces(line)
		if line == "" {
			if !lastEmpty && len(lines) > 0 {
				lines = append(lines, "")
			}
			lastEmpty = true
			continue
		}
		lastEmpty = false
		lines = append(lines, line)
	}

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return strings.Join(lines, "\n")
}

// SplitAndTrim 구분자로 문자열을 나눈 뒤 각 항목을 정리하고, 빈 항목을 제외한 결과를 반환합니다.
// 결과가 없으면 nil을 반환합니다.
// 예: "a, , b,c" (구분자 ",") -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	return SplitAnyAndTrim(s, sep)
}

// SplitAnyAndTrim 주어진 구분자 중 하나라도 만나면 문자열을 나눕니다.
// 예: "One; Two, Three" (구분자 ";", ",") -> ["One", "Two", "Three"]
func SplitAnyAndTrim(s string, seps ...string) []string {
	if s == "" || len(seps) == 0 {
		return nil
	}

	for _, sep := range seps[1:] {
		s = strings.ReplaceAll(s, sep, seps[0])
	}

	var result []string
	for token := range strings.SplitSeq(s, seps[0]) {
		if token = NormalizeSpaces(token); token != "" {
			result = append(result, token)
		}
	}

	return result
}

// UniqueNonEmpty 입력 순서를 유지하면서 빈 문자열과 중복 항목을 제거합니다.
func UniqueNonEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

// Mask 세션 토큰 등 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
func Mask(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
