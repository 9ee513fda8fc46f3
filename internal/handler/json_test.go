package handler

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/staff", nil)

	h.successResponse(w, r, "获取职员列表成功", map[string]int{"count": 3})

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "获取职员列表成功", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorResponseKeeps200(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/assignments", nil)

	// 业务失败走 200 + success=false
	h.errorResponse(w, r, "与已有业务的时间重叠")

	assert.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "与已有业务的时间重叠", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestBadRequestPlainError(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/staff", nil)

	h.badRequest(w, r, errors.New("请求体格式错误"))

	assert.Equal(t, 200, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "请求体格式错误", resp.Message)
}

func TestInternalServerError(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/shifts", nil)

	h.internalServerError(w, r, errors.New("connection refused"))

	assert.Equal(t, 500, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	// 内部错误细节不能泄露给客户端
	assert.Equal(t, "服务器内部错误", resp.Message)
}
