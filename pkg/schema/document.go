package schema

// DocumentSource 文件来源
const (
	DocumentSourceLocalFile = 0 // 本地文件
	DocumentSourceWebPage   = 1 // 在线网页
	DocumentSourceImage     = 5 // 图片
)

// DocumentStatus 文件处理状态
const (
	DocumentStatusProcessing = 0 // 处理中
	DocumentStatusDone       = 1 // 处理完成
	DocumentStatusFailed     = 9 // 处理失败
)

// MaxDocumentsPerUpload 单次上传的文件数量上限，客户端和服务端都会校验
const MaxDocumentsPerUpload = 10

// Document 知识库内的单个文件
type Document struct {
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
	CharCount  int    `json:"char_count,omitempty"`
	SliceCount int    `json:"slice_count,omitempty"`
	CreateTime int64  `json:"create_time,omitempty"`
	UpdateTime int64  `json:"update_time,omitempty"`
	Status     int    `json:"status,omitempty"`
	SourceType int    `json:"source_type,omitempty"`
	Type       string `json:"type,omitempty"`
	Size       int64  `json:"size,omitempty"`
	HitCount   int    `json:"hit_count,omitempty"`
	FormatType int    `json:"format_type,omitempty"`
	WebURL     string `json:"web_url,omitempty"`
}

// SourceInfo 上传文件的来源信息
type SourceInfo struct {
	FileBase64     string `json:"file_base64,omitempty"`
	FileType       string `json:"file_type,omitempty"`
	WebURL         string `json:"web_url,omitempty"`
	DocumentSource int    `json:"document_source"`
	SourceFileID   string `json:"source_file_id,omitempty"`
}

// UpdateRule 在线网页的更新规则
type UpdateRule struct {
	UpdateType     *int `json:"update_type,omitempty"`
	UpdateInterval *int `json:"update_interval,omitempty"`
}

// DocumentBase 单个待上传文件的描述，组装后整批提交
type DocumentBase struct {
	Name       string      `json:"name"`
	SourceInfo *SourceInfo `json:"source_info"`
	UpdateRule *UpdateRule `json:"update_rule,omitempty"`
}

// ChunkStrategy 分段策略，缺省时由上游使用默认分段
type ChunkStrategy struct {
	ChunkType        *int    `json:"chunk_type,omitempty"`
	Separator        *string `json:"separator,omitempty"`
	MaxTokens        *int    `json:"max_tokens,omitempty"`
	RemoveExtraSpace *bool   `json:"remove_extra_spaces,omitempty"`
	RemoveURLsEmails *bool   `json:"remove_urls_emails,omitempty"`
}

// DocumentListResponse 上游文件列表响应。
// total 为该知识库下的文件总数，超过一页时需要按页继续拉取。
type DocumentListResponse struct {
	Code          int         `json:"code,omitempty"`
	Msg           string      `json:"msg,omitempty"`
	DocumentInfos []*Document `json:"document_infos,omitempty"`
	Total         int         `json:"total,omitempty"`
}

// DocumentCreateResponse 上游创建文件响应
type DocumentCreateResponse struct {
	Code          int         `json:"code,omitempty"`
	Msg           string      `json:"msg,omitempty"`
	DocumentInfos []*Document `json:"document_infos,omitempty"`
}
