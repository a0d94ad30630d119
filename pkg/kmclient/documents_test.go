package kmclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malowking/cozekm/pkg/schema"
)

// newPagedServer 模拟代理的文件列表接口：total 个文件按 size 分页返回
func newPagedServer(t *testing.T, total int, requestedPages *[]int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/datasets/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))
		*requestedPages = append(*requestedPages, page)

		start := (page - 1) * size
		count := total - start
		if count > size {
			count = size
		}
		if count < 0 {
			count = 0
		}

		docs := make([]*schema.Document, 0, count)
		for i := 0; i < count; i++ {
			docs = append(docs, &schema.Document{
				DocumentID: fmt.Sprintf("p%d-doc-%d", page, i),
				Name:       fmt.Sprintf("文件-%d.pdf", start+i),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		resp := schema.DocumentListResponse{Code: 0, DocumentInfos: docs, Total: total}
		data, err := marshalForTest(resp)
		require.NoError(t, err)
		_, _ = w.Write(data)
	})
	return httptest.NewServer(mux)
}

func TestListAllDocumentsPagination(t *testing.T) {
	var pages []int
	server := newPagedServer(t, 250, &pages)
	defer server.Close()

	client := New(server.URL)
	docs, err := client.ListAllDocuments(t.Context(), "7421", ListAllOptions{PageSize: 100})
	require.NoError(t, err)

	// 250 条按 100 一页需要 3 页，顺序发出且顺序拼接
	assert.Equal(t, []int{1, 2, 3}, pages)
	require.Len(t, docs, 250)
	assert.Equal(t, "p1-doc-0", docs[0].DocumentID)
	assert.Equal(t, "p2-doc-0", docs[100].DocumentID)
	assert.Equal(t, "p3-doc-49", docs[249].DocumentID)
}

func TestListAllDocumentsSinglePage(t *testing.T) {
	var pages []int
	server := newPagedServer(t, 30, &pages)
	defer server.Close()

	client := New(server.URL)
	docs, err := client.ListAllDocuments(t.Context(), "7421", ListAllOptions{PageSize: 100})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, pages)
	assert.Len(t, docs, 30)
}

func TestListAllDocumentsEmptyDataset(t *testing.T) {
	var pages []int
	server := newPagedServer(t, 0, &pages)
	defer server.Close()

	client := New(server.URL)
	docs, err := client.ListAllDocuments(t.Context(), "7421", ListAllOptions{})
	require.NoError(t, err)

	// total 为 0 时只发第一页，不再翻页
	assert.Equal(t, []int{1}, pages)
	assert.Empty(t, docs)
}

func TestListAllDocumentsPageFailure(t *testing.T) {
	var pages []int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/datasets/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, page)
		if page == 2 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":true,"message":"上游服务请求失败"}`))
			return
		}
		resp := schema.DocumentListResponse{Code: 0, DocumentInfos: make([]*schema.Document, 100), Total: 250}
		for i := range resp.DocumentInfos {
			resp.DocumentInfos[i] = &schema.Document{DocumentID: fmt.Sprintf("p%d-doc-%d", page, i)}
		}
		data, err := marshalForTest(resp)
		require.NoError(t, err)
		_, _ = w.Write(data)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL)
	docs, err := client.ListAllDocuments(t.Context(), "7421", ListAllOptions{PageSize: 100})

	// 中间页失败：整体失败、不返回部分结果、后续页不再请求
	require.Error(t, err)
	assert.Contains(t, err.Error(), "上游服务请求失败")
	assert.Nil(t, docs)
	assert.Equal(t, []int{1, 2}, pages)
}

func TestListAllDocumentsMaxPages(t *testing.T) {
	var pages []int
	server := newPagedServer(t, 1000, &pages)
	defer server.Close()

	client := New(server.URL)
	docs, err := client.ListAllDocuments(t.Context(), "7421", ListAllOptions{PageSize: 100, MaxPages: 2})
	require.NoError(t, err)

	// 上限截断：返回已拼接的前缀且不报错
	assert.Equal(t, []int{1, 2}, pages)
	assert.Len(t, docs, 200)
}

func TestBatchDeleteDocumentsAbortsOnFirstError(t *testing.T) {
	var deleted []string
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		deleted = append(deleted, id)
		if id == "B" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":true,"message":"document not exist"}`))
			return
		}
		_, _ = w.Write([]byte(`{"code":0,"msg":""}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := New(server.URL)
	err := client.BatchDeleteDocuments(t.Context(), []string{"A", "B", "C"})

	// B 失败后立即中止，C 不会被请求
	require.Error(t, err)
	assert.Contains(t, err.Error(), "删除文件 B 失败")
	assert.Contains(t, err.Error(), "document not exist")
	assert.Equal(t, []string{"A", "B"}, deleted)
}

func TestBatchDeleteDocumentsEmpty(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.BatchDeleteDocuments(t.Context(), nil)
	require.Error(t, err)
	assert.Equal(t, "请提供要删除的文件ID", err.Error())
	assert.Zero(t, requests)
}

func TestUploadDocumentsPayload(t *testing.T) {
	var body map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/datasets/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		body = decodeBodyForTest(t, r)
		_, _ = w.Write([]byte(`{"code":0,"document_infos":[{"document_id":"d1","name":"a.pdf"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	bases, err := AssembleFileDocuments([]FileInput{
		{Name: "a.pdf", Content: []byte("hello")},
	})
	require.NoError(t, err)

	client := New(server.URL)
	resp, err := client.UploadDocuments(t.Context(), "7421", bases, UploadOptions{})
	require.NoError(t, err)
	require.Len(t, resp.DocumentInfos, 1)
	assert.Equal(t, "d1", resp.DocumentInfos[0].DocumentID)

	assert.Equal(t, float64(0), body["format_type"])
	assert.NotContains(t, body, "chunk_strategy")
	docBases, ok := body["document_bases"].([]interface{})
	require.True(t, ok)
	require.Len(t, docBases, 1)
}

func TestGetDocumentProgressPayload(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents/progress", r.URL.Path)
		body = decodeBodyForTest(t, r)
		_, _ = w.Write([]byte(`{"code":0,"data":{"data":[]}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.GetDocumentProgress(t.Context(), "7421", []string{"d1", "d2"})
	require.NoError(t, err)

	assert.Equal(t, "7421", body["dataset_id"])
	assert.Equal(t, []interface{}{"d1", "d2"}, body["document_ids"])
}
