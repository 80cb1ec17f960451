package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	Username string `json:"username" binding:"required"`
}

type UpdateUserRequest struct {
	OldUsername string `json:"old_username" binding:"required"`
	NewUsername string `json:"new_username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
