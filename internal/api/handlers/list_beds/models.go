package list_beds

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
)

// ParseFilter читает фильтр ?branchId=&status=&type=
func ParseFilter(r *http.Request) (*models.ListBedsRequest, error) {
	branchID, err := handlers.QueryInt64(r, "branchId")
	if err != nil {
		return nil, err
	}
	return &models.ListBedsRequest{
		BranchID: branchID,
		Status:   handlers.QueryString(r, "status"),
		Type:     handlers.QueryString(r, "type"),
	}, nil
}
