package conf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/fluentparsing/fluentparsing/convert"
)

// conf types
const (
	StringType     = "string"
	BoolType       = "bool"
	KindType       = "kind"
	StringListType = "[]string"
)

// MapConf 基于Map的配置信息，数值类型的取值统一经过 convert 解析
type MapConf map[string]string

func ErrConfMissingKey(key, dataType string) error {
	return fmt.Errorf("MissingKey: The configs must contains %s, dataType must be %s", key, dataType)
}

func ErrConfKeyType(key, dataType string, cause error) error {
	if cause == nil {
		return fmt.Errorf("TypeError: The configs must contains %s, dataType must be %s", key, dataType)
	}
	return fmt.Errorf("TypeError: The configs must contains %s, dataType must be %s: %w", key, dataType, cause)
}

// UnmarshalJSON 接受任意标量值，统一转为字符串保存
func (conf *MapConf) UnmarshalJSON(data []byte) error {
	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	m := make(MapConf, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			m[k] = ""
		case string:
			m[k] = val
		case json.Number:
			m[k] = val.String()
		case jsoniter.Number:
			m[k] = string(val)
		case bool:
			m[k] = strconv.FormatBool(val)
		case []interface{}:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, fmt.Sprint(item))
			}
			m[k] = strings.Join(items, ",")
		default:
			return fmt.Errorf("config %s: unsupported value %v", k, v)
		}
	}
	*conf = m
	return nil
}

func (conf MapConf) Get(key string) (interface{}, error) {
	value, exist := conf[key]
	if !exist {
		return nil, fmt.Errorf("The configs must contains %s", key)
	}
	return value, nil
}

func (conf MapConf) GetStringOr(key string, deft string) (string, error) {
	ret, err := conf.GetString(key)
	if err != nil || ret == "" {
		return deft, err
	}
	return ret, err
}

func (conf MapConf) GetString(key string) (string, error) {
	value, exist := conf[key]
	if !exist {
		return "", ErrConfMissingKey(key, StringType)
	}
	return value, nil
}

// GetValue 按 kind 解析 key 对应的值，失败时返回该类型零值
func (conf MapConf) GetValue(key string, kind convert.Kind) (interface{}, error) {
	value, exist := conf[key]
	if !exist {
		return kind.Zero(), ErrConfMissingKey(key, kind.String())
	}
	v, err := convert.Parse(value, kind)
	if err != nil {
		return kind.Zero(), ErrConfKeyType(key, kind.String(), err)
	}
	return v, nil
}

func (conf MapConf) GetDecimalOr(key string, deft decimal.Decimal) (decimal.Decimal, error) {
	ret, err := conf.GetDecimal(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetDecimal(key string) (decimal.Decimal, error) {
	v, err := conf.GetValue(key, convert.Decimal)
	return v.(decimal.Decimal), err
}

func (conf MapConf) GetDoubleOr(key string, deft float64) (float64, error) {
	ret, err := conf.GetDouble(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetDouble(key string) (float64, error) {
	v, err := conf.GetValue(key, convert.Double)
	return v.(float64), err
}

func (conf MapConf) GetIntOr(key string, deft int32) (int32, error) {
	ret, err := conf.GetInt(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetInt(key string) (int32, error) {
	v, err := conf.GetValue(key, convert.Int)
	return v.(int32), err
}

func (conf MapConf) GetCharOr(key string, deft rune) (rune, error) {
	ret, err := conf.GetChar(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetChar(key string) (rune, error) {
	v, err := conf.GetValue(key, convert.Char)
	return v.(rune), err
}

func (conf MapConf) GetLongOr(key string, deft int64) (int64, error) {
	ret, err := conf.GetLong(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetLong(key string) (int64, error) {
	v, err := conf.GetValue(key, convert.Long)
	return v.(int64), err
}

func (conf MapConf) GetFloatOr(key string, deft float32) (float32, error) {
	ret, err := conf.GetFloat(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

func (conf MapConf) GetFloat(key string) (float32, error) {
	v, err := conf.GetValue(key, convert.Float)
	return v.(float32), err
}

func (conf MapConf) GetBoolOr(key string, deft bool) (bool, error) {
	ret, err := conf.GetBool(key)
	if err != nil {
		return deft, err
	}
	return ret, err
}

func (conf MapConf) GetBool(key string) (bool, error) {
	value, exist := conf[key]
	if !exist {
		return false, ErrConfMissingKey(key, BoolType)
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false, ErrConfKeyType(key, BoolType, err)
	}
	return v, nil
}

func (conf MapConf) GetKindOr(key string, deft convert.Kind) (convert.Kind, error) {
	ret, err := conf.GetKind(key)
	if err != nil {
		return deft, err
	}
	return ret, nil
}

// GetKind 读取一个类型名，如 "long"
func (conf MapConf) GetKind(key string) (convert.Kind, error) {
	value, exist := conf[key]
	if !exist {
		return 0, ErrConfMissingKey(key, KindType)
	}
	k, err := convert.ParseKind(value)
	if err != nil {
		return 0, ErrConfKeyType(key, KindType, err)
	}
	return k, nil
}

func (conf MapConf) GetStringListOr(key string, deft []string) ([]string, error) {
	ret, err := conf.GetStringList(key)
	if err != nil {
		return deft, err
	}
	return ret, err
}

func (conf MapConf) GetStringList(key string) ([]string, error) {
	value, exist := conf[key]
	if !exist {
		return []string{}, ErrConfMissingKey(key, StringListType)
	}
	v := strings.Split(value, ",")
	var newV []string
	for _, i := range v {
		trimI := strings.TrimSpace(i)
		if len(trimI) > 0 {
			newV = append(newV, trimI)
		}
	}
	if len(newV) <= 0 {
		return []string{}, ErrConfKeyType(key, StringListType, nil)
	}
	return newV, nil
}
