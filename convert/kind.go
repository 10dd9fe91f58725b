package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind 转换的目标类型
type Kind int

// kinds
const (
	Decimal Kind = iota
	Double
	Int
	Char
	Long
	Float
)

var ErrUnknownKind = errors.New("unknown conversion kind")

var kindNames = [...]string{
	Decimal: "decimal",
	Double:  "double",
	Int:     "int",
	Char:    "char",
	Long:    "long",
	Float:   "float",
}

// Kinds 按固定顺序返回全部支持的类型
func Kinds() []Kind {
	return []Kind{Decimal, Double, Int, Char, Long, Float}
}

func (k Kind) Valid() bool {
	return k >= Decimal && k <= Float
}

// String 返回错误信息中使用的小写类型名
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Zero 返回该类型转换失败时的默认值
func (k Kind) Zero() interface{} {
	switch k {
	case Decimal:
		return decimal.Zero
	case Double:
		return float64(0)
	case Int:
		return int32(0)
	case Char:
		return rune(0)
	case Long:
		return int64(0)
	case Float:
		return float32(0)
	}
	return nil
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
