package schema

import "encoding/json"

// APIResponse 上游通用响应信封
type APIResponse struct {
	Code int             `json:"code,omitempty"`
	Msg  string          `json:"msg,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}
