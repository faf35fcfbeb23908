package dtos

type LoginQuery struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Data   string `json:"data,omitempty"`
}
