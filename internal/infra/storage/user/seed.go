package user

import (
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/password"
)

// DemoAccount учетная запись демонстрационного пользователя с паролем в открытом виде
type DemoAccount struct {
	User     domain.User
	Password string
}

// DemoAccounts демонстрационные учетные записи панели администратора
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{
			User:     domain.User{ID: 1, Username: "admin", FullName: "Quản trị viên", Role: domain.RoleAdmin},
			Password: "admin123",
		},
		{
			User:     domain.User{ID: 2, Username: "quanly", FullName: "Nguyễn Minh Quân", Role: domain.RoleManager, BranchIDs: []int64{1, 2}},
			Password: "quanly123",
		},
		{
			User:     domain.User{ID: 3, Username: "letan", FullName: "Lê Thị Hoa", Role: domain.RoleReceptionist, BranchIDs: []int64{1}},
			Password: "letan123",
		},
		{
			User:     domain.User{ID: 4, Username: "kythuat", FullName: "Phạm Thị Thu", Role: domain.RoleTherapist, BranchIDs: []int64{2}},
			Password: "kythuat123",
		},
	}
}

// DemoUsers возвращает демонстрационных пользователей с bcrypt-хешами паролей
func DemoUsers(cost int) ([]*domain.User, error) {
	accounts := DemoAccounts()
	users := make([]*domain.User, 0, len(accounts))
	for _, acc := range accounts {
		hash, err := password.Hash(acc.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", acc.User.Username, err)
		}
		u := acc.User
		u.PasswordHash = hash
		users = append(users, &u)
	}
	return users, nil
}
