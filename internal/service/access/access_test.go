package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
)

func TestCheck(t *testing.T) {
	receptionist := &domain.User{ID: 3, Role: domain.RoleReceptionist, BranchIDs: []int64{1}}
	therapist := &domain.User{ID: 4, Role: domain.RoleTherapist, BranchIDs: []int64{2}}

	tests := []struct {
		name        string
		user        *domain.User
		perms       []domain.Permission
		wantAllowed bool
		wantMissing []string
	}{
		{
			name:        "receptionist books",
			user:        receptionist,
			perms:       []domain.Permission{domain.PermViewBeds, domain.PermManageBookings},
			wantAllowed: true,
			wantMissing: []string{},
		},
		{
			name:        "receptionist cannot manage beds or export",
			user:        receptionist,
			perms:       []domain.Permission{domain.PermManageBeds, domain.PermViewBeds, domain.PermExportReports},
			wantMissing: []string{"beds.manage", "reports.export"},
		},
		{
			name:        "therapist is read only",
			user:        therapist,
			perms:       []domain.Permission{domain.PermManageBookings},
			wantMissing: []string{"bookings.manage"},
		},
		{
			name:        "no user",
			user:        nil,
			perms:       []domain.Permission{domain.PermViewBeds},
			wantMissing: []string{"beds.view"},
		},
		{
			name:        "no permissions required",
			user:        therapist,
			wantAllowed: true,
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Check(tt.user, tt.perms...)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantMissing, d.MissingNames())
		})
	}
}
