package convert

import "strconv"

// StrTo 字符串类型转换辅助
type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	v, err := strconv.Atoi(s.String())
	return v, err
}

// MustInt converts to int, returning 0 on failure
// MustInt 转换为 int，失败时返回 0
func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}

func (s StrTo) Int64() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	return v, err
}

// MustInt64 converts to int64, returning 0 on failure
// MustInt64 转换为 int64，失败时返回 0
func (s StrTo) MustInt64() int64 {
	v, _ := s.Int64()
	return v
}

func (s StrTo) Float64() (float64, error) {
	v, err := strconv.ParseFloat(s.String(), 64)
	return v, err
}

func (s StrTo) MustFloat64() float64 {
	v, _ := s.Float64()
	return v
}

func (s StrTo) Bool() (bool, error) {
	v, err := strconv.ParseBool(s.String())
	return v, err
}

func (s StrTo) MustBool() bool {
	v, _ := s.Bool()
	return v
}
