package convert

import (
	"errors"
	"fmt"
)

var ErrInvalidConversion = errors.New("invalid conversion")

// ConversionError 描述一次失败的转换，畸形输入与越界输入共用同一种错误
type ConversionError struct {
	Text string
	Kind Kind
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Unable to convert '%s' to '%s'", e.Text, e.Kind)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrInvalidConversion
}

func errConvert(text string, kind Kind, err error) error {
	return &ConversionError{Text: text, Kind: kind, Err: err}
}

func IsInvalidConversion(err error) bool {
	return errors.Is(err, ErrInvalidConversion)
}
