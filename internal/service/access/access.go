package access

import (
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

// Decision результат проверки разрешений
type Decision struct {
	Allowed bool
	// Missing разрешения, которых не хватает пользователю (в порядке запроса)
	Missing []domain.Permission
}

// Check проверяет, что у пользователя есть все перечисленные разрешения.
// Без пользователя недостает всех разрешений; пустой список разрешений разрешен любому пользователю.
func Check(user *domain.User, perms ...domain.Permission) Decision {
	if user == nil {
		missing := make([]domain.Permission, 0, len(perms))
		missing = append(missing, perms...)
		return Decision{Allowed: false, Missing: missing}
	}

	var missing []domain.Permission
	for _, p := range perms {
		if !user.HasPermission(p) {
			missing = append(missing, p)
		}
	}
	return Decision{Allowed: len(missing) == 0, Missing: missing}
}

// MissingNames возвращает недостающие разрешения строками
func (d Decision) MissingNames() []string {
	names := make([]string, 0, len(d.Missing))
	for _, p := range d.Missing {
		names = append(names, string(p))
	}
	return names
}
