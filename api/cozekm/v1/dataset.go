package v1

import (
	"encoding/json"

	"github.com/gogf/gf/v2/frame/g"
)

type DatasetListReq struct {
	g.Meta     `path:"/datasets" method:"get" tags:"dataset" summary:"List datasets"`
	Name       string `p:"name" dc:"按名称过滤"`
	FormatType *int   `p:"format_type" v:"in:0,2" dc:"0-文本 2-图片"`
	PageNum    int    `p:"page_num" d:"1" v:"min:1" dc:"页码"`
	PageSize   int    `p:"page_size" d:"20" v:"min:1|max:300" dc:"每页数量"`
}

// DatasetListRes 上游响应原样透传
type DatasetListRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DatasetCreateReq struct {
	g.Meta      `path:"/datasets" method:"post" tags:"dataset" summary:"Create dataset"`
	Name        string `json:"name" v:"required#知识库名称不能为空" dc:"知识库名称"`
	Description string `json:"description" dc:"知识库描述"`
	FormatType  int    `json:"format_type" d:"0" v:"in:0,2#format_type 仅支持 0 或 2" dc:"0-文本 2-图片，创建后不可修改"`
	Icon        string `json:"icon" dc:"图标"`
}

type DatasetCreateRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

// DatasetUpdateReq 修改知识库信息，nil 字段不下发。
// format_type 创建后不可变，更新报文里永远没有这个字段。
type DatasetUpdateReq struct {
	g.Meta      `path:"/datasets/{id}" method:"put" tags:"dataset" summary:"Update dataset"`
	Id          string  `v:"required" dc:"知识库 id"`
	Name        *string `json:"name" v:"length:1,100" dc:"知识库名称"`
	Description *string `json:"description" dc:"知识库描述"`
	Icon        *string `json:"icon" dc:"图标"`
}

type DatasetUpdateRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DatasetDeleteReq struct {
	g.Meta `path:"/datasets/{id}" method:"delete" tags:"dataset" summary:"Delete dataset"`
	Id     string `v:"required" dc:"知识库 id"`
}

type DatasetDeleteRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}
