// Package response はAPI共通のレスポンス封筒。
package response

import "app/internal/message"

type DetailError struct {
	Field        string `json:"field"`
	MessageID    string `json:"messageId"`
	ErrorMessage string `json:"errorMessage"`
}

// 全API共通の {success, messageId, message, detailErrors, response} の土台。
// 各レスポンス型がこれを埋め込み、Responseフィールドを足す。
type ApiResult struct {
	Success      bool          `json:"success"`
	MessageID    string        `json:"messageId"`
	Message      string        `json:"message"`
	DetailErrors []DetailError `json:"detailErrors"`
}

// SetMessage はmessageIdと解決済み文言をセットする。
func (r *ApiResult) SetMessage(messageID string, args ...string) {
	r.MessageID = messageID
	r.Message = message.Get(messageID, args...)
}

// ページング情報
type Pagination struct {
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(totalCount int64, page int, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
