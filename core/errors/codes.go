package errors

// ErrCode 业务错误码类型
type ErrCode int

const (
	// 通用错误 1000-1999
	ErrInvalidParameter ErrCode = 1001 // 参数错误
	ErrUnauthorized     ErrCode = 1002 // 未授权
	ErrInternalError    ErrCode = 1003 // 内部错误
	ErrNotFound         ErrCode = 1004 // 资源未找到
	ErrOperationFailed  ErrCode = 1005 // 操作失败

	// 知识库相关 3000-3999
	ErrDatasetNotFound     ErrCode = 3001 // 知识库未找到
	ErrDatasetCreateFailed ErrCode = 3002 // 知识库创建失败
	ErrDatasetUpdateFailed ErrCode = 3003 // 知识库更新失败
	ErrDatasetDeleteFailed ErrCode = 3004 // 知识库删除失败

	// 文档相关 4000-4999
	ErrDocumentNotFound     ErrCode = 4001 // 文档未找到
	ErrDocumentUploadFailed ErrCode = 4002 // 文档上传失败
	ErrDocumentDeleteFailed ErrCode = 4003 // 文档删除失败
	ErrTooManyDocuments     ErrCode = 4004 // 单次上传文件数超限

	// 上游相关 5000-5999
	ErrUpstreamUnavailable ErrCode = 5001 // 上游服务不可用
)

// HTTPStatusCode 返回错误码对应的HTTP状态码
func (e ErrCode) HTTPStatusCode() int {
	switch {
	case e >= 1001 && e <= 1999:
		// 通用错误
		switch e {
		case ErrInvalidParameter:
			return 400
		case ErrUnauthorized:
			return 401
		case ErrNotFound:
			return 404
		default:
			return 500
		}
	case e >= 3000 && e <= 3999:
		// 知识库相关错误
		if e == ErrDatasetNotFound {
			return 404
		}
		return 500
	case e >= 4000 && e <= 4999:
		// 文档相关错误
		switch e {
		case ErrDocumentNotFound:
			return 404
		case ErrTooManyDocuments:
			return 400
		default:
			return 500
		}
	case e >= 5000 && e <= 5999:
		return 502
	default:
		return 500
	}
}
