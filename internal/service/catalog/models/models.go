package models

// CatalogResponse справочник для форм администратора
type CatalogResponse struct {
	Branches  []BranchResponse   `json:"branches"`
	Rooms     []RoomResponse     `json:"rooms"`
	Services  []ServiceResponse  `json:"services"`
	Staff     []StaffResponse    `json:"staff"`
	Customers []CustomerResponse `json:"customers"`
}

// BranchResponse филиал
type BranchResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// RoomResponse помещение филиала
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID int64  `json:"branchId"`
}

// ServiceResponse услуга
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// StaffResponse специалист
type StaffResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BranchID int64  `json:"branchId"`
}

// CustomerResponse клиент
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
