package errors

// UpstreamError 上游 API 调用失败。
// Status 是上游返回的 HTTP 状态码，原样透传给调用方；没有状态码时为 500。
type UpstreamError struct {
	Status  int
	Message string
}

// Error 实现 error 接口
func (e *UpstreamError) Error() string {
	return e.Message
}

// NewUpstream 创建上游错误
func NewUpstream(status int, message string) *UpstreamError {
	if status <= 0 {
		status = 500
	}
	return &UpstreamError{
		Status:  status,
		Message: message,
	}
}

// GetUpstreamError 获取上游错误，如果不是则返回nil
func GetUpstreamError(err error) *UpstreamError {
	if upErr, ok := err.(*UpstreamError); ok {
		return upErr
	}
	return nil
}

// NormalizeMessage 统一的错误消息提取。
// 优先级：上游响应的 msg 字段 > 传输层错误消息 > 固定兜底文案。
// 代理层和客户端层对错误做归一时都走这一个函数，保证两侧行为一致。
func NormalizeMessage(upstreamMsg string, transportErr error, fallback string) string {
	if upstreamMsg != "" {
		return upstreamMsg
	}
	if transportErr != nil && transportErr.Error() != "" {
		return transportErr.Error()
	}
	return fallback
}
