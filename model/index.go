package model

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

// TokenResponse là dạng trả về của /auth/login và /auth/renew-token
type TokenResponse struct {
	Token   TokenData `json:"token"`
	Message string    `json:"message,omitempty"`
}

type TokenClaim struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Subject  string `json:"sub"`
	Exp      int64  `json:"exp"`
}

type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery là tham số tìm kiếm + phân trang cho các màn hình danh sách
type ListQuery struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"pageSize" validate:"omitempty,gte=1,lte=500"`
}

func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 5
	}
	return q
}

type ArrayId struct {
	IDs []uint `json:"ids"`
}
