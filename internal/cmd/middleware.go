package cmd

import (
	"net/http"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/google/uuid"

	apperrors "github.com/Malowking/cozekm/core/errors"
)

const headerRequestID = "X-Request-Id"

// ErrorResponse 统一错误响应。无论上游哪条路径失败，
// 浏览器端拿到的都是这一种形状。
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MiddlewareRequestID 给每个请求分配 request id，便于日志串联
func MiddlewareRequestID(r *ghttp.Request) {
	requestID := r.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	r.Response.Header().Set(headerRequestID, requestID)
	r.SetCtxVar(headerRequestID, requestID)
	r.Middleware.Next()
}

// MiddlewareProxyResponse 代理响应中间件。
// 成功时把 handler 返回的上游响应体原样写出（不套 code/message/data 包装），
// 失败时统一写出 {error:true,message} 并镜像上游 HTTP 状态码：
// 本地校验错误为 400，上游错误取上游状态码，其余为 500。
func MiddlewareProxyResponse(r *ghttp.Request) {
	r.Middleware.Next()

	// There's custom buffer content, it then exits current handler.
	if r.Response.BufferLength() > 0 || r.Response.Writer.BytesWritten() > 0 {
		return
	}

	err := r.GetError()
	if err == nil {
		r.Response.WriteJson(r.GetHandlerResponse())
		return
	}

	var (
		status  = http.StatusInternalServerError
		message = err.Error()
	)
	if upErr := apperrors.GetUpstreamError(err); upErr != nil {
		status = upErr.Status
		message = upErr.Message
	} else if appErr := apperrors.GetAppError(err); appErr != nil {
		status = appErr.Code.HTTPStatusCode()
		message = appErr.Message
	} else if gerror.Code(err) == gcode.CodeValidationFailed {
		status = http.StatusBadRequest
	}
	if message == "" {
		message = "Internal Server Error"
	}

	g.Log().Errorf(r.Context(), "request failed: %s %s, status=%d, message=%s",
		r.Method, r.URL.Path, status, message)

	r.Response.WriteHeader(status)
	r.Response.WriteJson(ErrorResponse{
		Error:   true,
		Message: message,
	})
}
