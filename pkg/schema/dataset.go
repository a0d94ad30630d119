package schema

// FormatType 知识库内容类型，创建后不可修改
const (
	FormatTypeText  = 0 // 文本类型
	FormatTypeImage = 2 // 图片类型
)

// Dataset Coze 知识库
type Dataset struct {
	DatasetID   string `json:"dataset_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FormatType  int    `json:"format_type"`
	Icon        string `json:"icon,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	DocCount    int    `json:"doc_count,omitempty"`
	SliceCount  int    `json:"slice_count,omitempty"`
	CreateTime  int64  `json:"create_time,omitempty"`
	UpdateTime  int64  `json:"update_time,omitempty"`
	Status      int    `json:"status,omitempty"`
}

// DatasetListData 知识库列表响应的 data 字段
type DatasetListData struct {
	TotalCount  int        `json:"total_count"`
	DatasetList []*Dataset `json:"dataset_list"`
}

// DatasetListResponse 上游知识库列表响应
type DatasetListResponse struct {
	Code int              `json:"code,omitempty"`
	Msg  string           `json:"msg,omitempty"`
	Data *DatasetListData `json:"data,omitempty"`
}
