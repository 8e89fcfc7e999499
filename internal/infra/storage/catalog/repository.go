package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/psqlbuilder"
)

// DBExecutor минимальный интерфейс для чтения из БД (*sql.DB, *sql.Tx)
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Repository загружает справочные данные (клиенты, услуги, персонал, филиалы, комнаты) из PostgreSQL.
// Только чтение: справочник не изменяется сервисом.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает весь справочник
func (r *Repository) Load(ctx context.Context) (*domain.Catalog, error) {
	branches, err := r.loadBranches(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := r.loadRooms(ctx)
	if err != nil {
		return nil, err
	}

	services, err := r.loadServices(ctx)
	if err != nil {
		return nil, err
	}

	staff, err := r.loadStaff(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := r.loadCustomers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Catalog{
		Customers: customers,
		Services:  services,
		Staff:     staff,
		Branches:  branches,
		Rooms:     rooms,
	}, nil
}

func (r *Repository) loadBranches(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.query(ctx, "loadBranches",
		psqlbuilder.Select("id", "name", "address").
			From("branches").
			OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0)
	for rows.Next() {
		var b domain.Branch
		var address sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &address); err != nil {
			return nil, fmt.Errorf("%w: loadBranches - scan: %v", ErrScanRow, err)
		}
		b.Address = address.String
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadBranches - rows: %v", ErrScanRow, err)
	}
	return branches, nil
}

func (r *Repository) loadRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.query(ctx, "loadRooms",
		psqlbuilder.Select("id", "name", "branch_id").
			From("rooms").
			OrderBy("branch_id ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.BranchID); err != nil {
			return nil, fmt.Errorf("%w: loadRooms - scan: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadRooms - rows: %v", ErrScanRow, err)
	}
	return rooms, nil
}

func (r *Repository) loadServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.query(ctx, "loadServices",
		psqlbuilder.Select("id", "name", "duration_minutes", "price").
			From("services").
			Where(squirrel.Eq{"is_active": true}).
			OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("%w: loadServices - scan: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - rows: %v", ErrScanRow, err)
	}
	return services, nil
}

func (r *Repository) loadStaff(ctx context.Context) ([]domain.Staff, error) {
	rows, err := r.query(ctx, "loadStaff",
		psqlbuilder.Select("id", "full_name", "branch_id").
			From("staff").
			Where(squirrel.Eq{"is_active": true}).
			OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.BranchID); err != nil {
			return nil, fmt.Errorf("%w: loadStaff - scan: %v", ErrScanRow, err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadStaff - rows: %v", ErrScanRow, err)
	}
	return staff, nil
}

func (r *Repository) loadCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.query(ctx, "loadCustomers",
		psqlbuilder.Select("id", "full_name", "phone").
			From("customers").
			OrderBy("id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		var phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &phone); err != nil {
			return nil, fmt.Errorf("%w: loadCustomers - scan: %v", ErrScanRow, err)
		}
		c.Phone = phone.String
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadCustomers - rows: %v", ErrScanRow, err)
	}
	return customers, nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	return rows, nil
}
