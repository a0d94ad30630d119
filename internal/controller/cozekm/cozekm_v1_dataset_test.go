package cozekm

import (
	"net/http"
	"testing"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/Malowking/cozekm/api/cozekm/v1"
	"github.com/Malowking/cozekm/core/errors"
)

func TestDatasetListPassesThrough(t *testing.T) {
	var captured *http.Request
	ctrl, server := newTestController(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{"code":0,"msg":"","data":{"dataset_list":[{"dataset_id":"7421","name":"产品手册","format_type":0}],"total_count":1}}`))
	})
	defer server.Close()

	res, err := ctrl.DatasetList(t.Context(), &v1.DatasetListReq{PageNum: 1, PageSize: 20})
	require.NoError(t, err)

	// space_id 由客户端注入，handler 不感知
	assert.Equal(t, "space-123", captured.URL.Query().Get("space_id"))
	assert.JSONEq(t,
		`{"code":0,"msg":"","data":{"dataset_list":[{"dataset_id":"7421","name":"产品手册","format_type":0}],"total_count":1}}`,
		string(res.RawMessage))
}

func TestDatasetCreateForwardsToUpstream(t *testing.T) {
	ctrl, server := newTestController(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":{"dataset_id":"7421"}}`))
	})
	defer server.Close()

	res, err := ctrl.DatasetCreate(t.Context(), &v1.DatasetCreateReq{Name: "产品手册"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":0,"data":{"dataset_id":"7421"}}`, string(res.RawMessage))
}

func TestDatasetDeletePropagatesUpstreamStatus(t *testing.T) {
	ctrl, server := newTestController(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":4100,"msg":"permission denied"}`))
	})
	defer server.Close()

	_, err := ctrl.DatasetDelete(t.Context(), &v1.DatasetDeleteReq{Id: "7421"})
	require.Error(t, err)

	upErr := errors.GetUpstreamError(err)
	require.NotNil(t, upErr)
	assert.Equal(t, http.StatusForbidden, upErr.Status)
	assert.Equal(t, "permission denied", upErr.Message)
}

func TestDatasetCreateReqValidation(t *testing.T) {
	ctx := t.Context()

	t.Run("名称必填", func(t *testing.T) {
		err := g.Validator().Data(&v1.DatasetCreateReq{FormatType: 0}).Run(ctx)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "知识库名称不能为空")
	})

	t.Run("format_type 只允许 0 和 2", func(t *testing.T) {
		err := g.Validator().Data(&v1.DatasetCreateReq{Name: "测试", FormatType: 1}).Run(ctx)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "format_type 仅支持 0 或 2")
	})

	t.Run("合法请求", func(t *testing.T) {
		err := g.Validator().Data(&v1.DatasetCreateReq{Name: "测试", FormatType: 2}).Run(ctx)
		assert.Nil(t, err)
	})
}
