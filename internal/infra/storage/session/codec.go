package session

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

func encodeUser(user *domain.User) ([]byte, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: encode - nil user", ErrStore)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("%w: encode - %v", ErrStore, err)
	}
	return data, nil
}

// decodeUser возвращает false, если содержимое нельзя считать пользователем
func decodeUser(data []byte) (*domain.User, bool) {
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	if user.ID <= 0 || user.Username == "" || user.Role == "" {
		return nil, false
	}
	return &user, true
}
