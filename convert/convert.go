// Package convert 提供字符串到基本类型的转换函数。
//
// 每种类型有三种调用方式：
//
//	ParseX(text) (T, error)  失败时返回零值和 *ConversionError
//	ToX(text) T              失败时静默返回零值
//	MustX(text) T            失败时以 *ConversionError panic
//
// Convert 按 (text, kind, shouldThrow) 统一分发。静默返回的零值与输入本身为零无法区分。
package convert

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// blank 输入对所有类型都视为失败，包括 char
func blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func ParseDecimal(text string) (decimal.Decimal, error) {
	if blank(text) {
		return decimal.Zero, errConvert(text, Decimal, nil)
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, errConvert(text, Decimal, err)
	}
	return v, nil
}

func ParseDouble(text string) (float64, error) {
	if blank(text) {
		return 0, errConvert(text, Double, nil)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errConvert(text, Double, err)
	}
	return v, nil
}

func ParseInt(text string) (int32, error) {
	if blank(text) {
		return 0, errConvert(text, Int, nil)
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, errConvert(text, Int, err)
	}
	return int32(v), nil
}

// ParseChar 只接受恰好一个合法的 UTF-8 字符
func ParseChar(text string) (rune, error) {
	if blank(text) || utf8.RuneCountInString(text) != 1 {
		return 0, errConvert(text, Char, nil)
	}
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError && size <= 1 {
		return 0, errConvert(text, Char, nil)
	}
	return r, nil
}

func ParseLong(text string) (int64, error) {
	if blank(text) {
		return 0, errConvert(text, Long, nil)
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errConvert(text, Long, err)
	}
	return v, nil
}

func ParseFloat(text string) (float32, error) {
	if blank(text) {
		return 0, errConvert(text, Float, nil)
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, errConvert(text, Float, err)
	}
	return float32(v), nil
}

func ToDecimal(text string) decimal.Decimal {
	v, _ := ParseDecimal(text)
	return v
}

func ToDouble(text string) float64 {
	v, _ := ParseDouble(text)
	return v
}

func ToInt(text string) int32 {
	v, _ := ParseInt(text)
	return v
}

func ToChar(text string) rune {
	v, _ := ParseChar(text)
	return v
}

func ToLong(text string) int64 {
	v, _ := ParseLong(text)
	return v
}

func ToFloat(text string) float32 {
	v, _ := ParseFloat(text)
	return v
}

func MustDecimal(text string) decimal.Decimal {
	v, err := ParseDecimal(text)
	if err != nil {
		panic(err)
	}
	return v
}

func MustDouble(text string) float64 {
	v, err := ParseDouble(text)
	if err != nil {
		panic(err)
	}
	return v
}

func MustInt(text string) int32 {
	v, err := ParseInt(text)
	if err != nil {
		panic(err)
	}
	return v
}

func MustChar(text string) rune {
	v, err := ParseChar(text)
	if err != nil {
		panic(err)
	}
	return v
}

func MustLong(text string) int64 {
	v, err := ParseLong(text)
	if err != nil {
		panic(err)
	}
	return v
}

func MustFloat(text string) float32 {
	v, err := ParseFloat(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse 按 kind 转换 text，失败时返回该类型零值和错误
func Parse(text string, kind Kind) (interface{}, error) {
	switch kind {
	case Decimal:
		return ParseDecimal(text)
	case Double:
		return ParseDouble(text)
	case Int:
		return ParseInt(text)
	case Char:
		return ParseChar(text)
	case Long:
		return ParseLong(text)
	case Float:
		return ParseFloat(text)
	}
	return nil, ErrUnknownKind
}

// Convert shouldThrow 为 false 时吞掉转换错误并返回零值；未知的 kind 总是返回 ErrUnknownKind
func Convert(text string, kind Kind, shouldThrow bool) (interface{}, error) {
	v, err := Parse(text, kind)
	if err == nil || !shouldThrow && IsInvalidConversion(err) {
		return v, nil
	}
	return v, err
}

// ConvertPtr 与 Convert 相同，nil 表示输入缺失，错误信息中显示为空字符串
func ConvertPtr(text *string, kind Kind, shouldThrow bool) (interface{}, error) {
	var s string
	if text != nil {
		s = *text
	}
	return Convert(s, kind, shouldThrow)
}
