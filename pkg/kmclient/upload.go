package kmclient

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Malowking/cozekm/pkg/schema"
)

// SupportedExtensions 本地上传允许的文件扩展名
var SupportedExtensions = []string{"pdf", "txt", "doc", "docx", "md"}

// FileInput 待上传的本地文件。
// Base64 非空时优先使用（data URI 前缀会被剥掉），否则对 Content 编码。
type FileInput struct {
	Name    string
	Content []byte
	Base64  string
}

// FileExtension 取小写扩展名（最后一个点之后的部分），没有点返回空串
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// IsSupportedExtension 判断扩展名是否在允许列表内
func IsSupportedExtension(ext string) bool {
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// StripDataURIPrefix 剥掉 data:xxx;base64, 前缀，纯 base64 串原样返回
func StripDataURIPrefix(s string) string {
	if strings.HasPrefix(s, "data:") {
		if idx := strings.Index(s, ","); idx >= 0 {
			return s[idx+1:]
		}
	}
	return s
}

// AssembleFileDocuments 把本地文件组装成 document_bases。
// 数量上限在任何编码发生之前校验；任何单个文件组装失败则整批失败，
// 不会产生部分结果。
func AssembleFileDocuments(files []FileInput) ([]*schema.DocumentBase, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("请选择要上传的文件")
	}
	if len(files) > schema.MaxDocumentsPerUpload {
		return nil, fmt.Errorf("每次最多上传10个文件")
	}

	bases := make([]*schema.DocumentBase, 0, len(files))
	for _, file := range files {
		ext := FileExtension(file.Name)
		if !IsSupportedExtension(ext) {
			return nil, fmt.Errorf("不支持的文件格式: %s", file.Name)
		}

		encoded := file.Base64
		if encoded != "" {
			encoded = StripDataURIPrefix(encoded)
		} else {
			if len(file.Content) == 0 {
				return nil, fmt.Errorf("文件内容为空: %s", file.Name)
			}
			encoded = base64.StdEncoding.EncodeToString(file.Content)
		}

		bases = append(bases, &schema.DocumentBase{
			Name: file.Name,
			SourceInfo: &schema.SourceInfo{
				FileBase64:     encoded,
				FileType:       ext,
				DocumentSource: schema.DocumentSourceLocalFile,
			},
		})
	}
	return bases, nil
}

// AssembleWebDocument 把一个网页 URL 组装成单条 document_bases。
// URL 只做非空校验，格式交给上游判断。
func AssembleWebDocument(webURL string) ([]*schema.DocumentBase, error) {
	if strings.TrimSpace(webURL) == "" {
		return nil, fmt.Errorf("请输入网页URL")
	}
	return []*schema.DocumentBase{{
		Name: webURL,
		SourceInfo: &schema.SourceInfo{
			WebURL:         webURL,
			DocumentSource: schema.DocumentSourceWebPage,
		},
	}}, nil
}
