package models

import (
	"time"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// UserResponse пользователь сессии (без хеша пароля)
type UserResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	FullName    string   `json:"fullName"`
	Role        string   `json:"role"`
	BranchIDs   []int64  `json:"branchIds"`
	Permissions []string `json:"permissions"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) UserResponse {
	branches := make([]int64, 0, len(u.BranchIDs))
	branches = append(branches, u.BranchIDs...)

	perms := make([]string, 0, len(domain.RolePermissions[u.Role]))
	for _, p := range domain.RolePermissions[u.Role] {
		perms = append(perms, string(p))
	}

	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        string(u.Role),
		BranchIDs:   branches,
		Permissions: perms,
	}
}
