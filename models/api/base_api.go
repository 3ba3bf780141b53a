package apimodels

import "github.com/pkg/errors"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //общее кол-во записей с учётом фильтра
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // записей на странице, не более MaxPageSize
	Page  int `json:"page" query:"page"`   // страница с 1
}

func (r Pagination) Validate() error {
	if r.Page < 0 || r.Limit < 0 {
		return errors.New("ページ指定が不正です")
	}
	return nil
}

// GetPage нулевые значения заменяются значениями по умолчанию
func (r Pagination) GetPage() (page, limit int) {
	page, limit = 1, DefaultPageSize
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = min(r.Limit, MaxPageSize)
	}
	return page, limit
}
