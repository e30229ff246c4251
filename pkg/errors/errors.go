package errors

import (
	"errors"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/middleware"
	"github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details []string `json:"details,omitempty"`
	// TraceID 请求追踪ID
	TraceID string `json:"traceId,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return &AppError{
		Code:      c.Code(),
		Message:   c.Msg(),
		Details:   c.Details(),
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// ErrorResponse converts a service error into the unified response envelope.
// Known code.Code errors keep their registered code; gorm.ErrRecordNotFound
// maps to the generic not-found code; everything else is a server error.
// ErrorResponse 将服务层错误转换为统一响应。
// 已注册的 code.Code 保留其错误码；gorm.ErrRecordNotFound 映射为通用
// 未找到错误码；其余均视为服务内部错误。
func ErrorResponse(c *gin.Context, err error) {
	response := app.NewResponse(c)
	traceID := middleware.GetTraceIDFromGin(c)

	var codeObj *code.Code
	if errors.As(err, &codeObj) {
		if traceID != "" {
			response.ToResponse(codeObj.WithContext(traceID))
		} else {
			response.ToResponse(codeObj)
		}
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		response.ToResponse(code.ErrorServerInternal.WithDetails(appErr.Message).WithContext(traceID))
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.ToResponse(code.ErrorNotFound.WithContext(traceID))
		return
	}

	response.ToResponse(code.ErrorServerInternal.WithDetails(err.Error()).WithContext(traceID))
}
