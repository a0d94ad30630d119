package v1

import (
	"encoding/json"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/Malowking/cozekm/pkg/schema"
)

type DocumentListReq struct {
	g.Meta `path:"/datasets/{id}/documents" method:"get" tags:"document" summary:"List documents"`
	Id     string `v:"required" dc:"知识库 id"`
	Page   int    `p:"page" d:"1" v:"min:1" dc:"页码"`
	Size   int    `p:"size" d:"100" v:"min:1|max:300" dc:"每页数量"`
}

type DocumentListRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DocumentCreateReq struct {
	g.Meta        `path:"/datasets/{id}/documents" method:"post" tags:"document" summary:"Upload documents"`
	Id            string                 `v:"required" dc:"知识库 id"`
	DocumentBases []*schema.DocumentBase `json:"document_bases" dc:"待上传文件，最多 10 个"`
	ChunkStrategy *schema.ChunkStrategy  `json:"chunk_strategy" dc:"分段策略，缺省走上游默认分段"`
	FormatType    *int                   `json:"format_type" v:"in:0,2" dc:"0-文本 2-图片"`
}

type DocumentCreateRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DocumentDeleteReq struct {
	g.Meta `path:"/documents/{id}" method:"delete" tags:"document" summary:"Delete document"`
	Id     string `v:"required" dc:"文件 id"`
}

type DocumentDeleteRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DocumentBatchDeleteReq struct {
	g.Meta      `path:"/documents/batch-delete" method:"post" tags:"document" summary:"Batch delete documents"`
	DocumentIds []string `json:"document_ids" dc:"文件 id 列表"`
}

type DocumentBatchDeleteRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DocumentProgressReq struct {
	g.Meta      `path:"/documents/progress" method:"post" tags:"document" summary:"Get upload progress"`
	DatasetId   string   `json:"dataset_id" dc:"知识库 id"`
	DocumentIds []string `json:"document_ids" dc:"文件 id 列表"`
}

type DocumentProgressRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}

type DocumentUpdateReq struct {
	g.Meta `path:"/documents/{id}" method:"put" tags:"document" summary:"Update document"`
	Id     string  `v:"required" dc:"文件 id"`
	Name   *string `json:"name" v:"length:1,100" dc:"文件名"`
}

type DocumentUpdateRes struct {
	g.Meta `mime:"application/json"`
	json.RawMessage
}
