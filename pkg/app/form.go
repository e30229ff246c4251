package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

// Errors 返回全部错误消息
func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString 将错误消息拼接为单个字符串
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ", ")
}

// Maps 返回字段到错误消息的映射
func (v ValidErrors) Maps() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// MapsToString 将字段错误映射拼成可读字符串
func (v ValidErrors) MapsToString() string {
	var sb strings.Builder
	for _, err := range v {
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Key)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
	}
	return sb.String()
}

// BindAndValid binds request params and translates validation errors
// using the translator the lang middleware put into the context.
// BindAndValid 绑定请求参数，并用 lang 中间件放入上下文的翻译器
// 翻译校验错误。
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
		return false, errs
	}

	trans, _ := c.Value("trans").(ut.Translator)
	for _, verr := range verrs {
		message := verr.Error()
		if trans != nil {
			message = verr.Translate(trans)
		}
		errs = append(errs, &ValidError{
			Key:     verr.Field(),
			Message: message,
		})
	}
	return false, errs
}
