package domain

// Customer is a spa client
type Customer struct {
	ID    int64
	Name  string
	Phone string
}

// Service is a treatment offered by the spa
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Staff is a therapist working at a branch
type Staff struct {
	ID       int64
	Name     string
	BranchID int64
}

// Branch is a physical business location
type Branch struct {
	ID      int64
	Name    string
	Address string
}

// Room belongs to exactly one branch
type Room struct {
	ID       int64
	Name     string
	BranchID int64
}

// Catalog is the read-only reference data consumed by the scheduling core
type Catalog struct {
	Customers []Customer
	Services  []Service
	Staff     []Staff
	Branches  []Branch
	Rooms     []Room
}

// ServiceByName looks a service up by its display name
func (c *Catalog) ServiceByName(name string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// CustomerByID looks a customer up by id
func (c *Catalog) CustomerByID(id int64) (*Customer, bool) {
	for i := range c.Customers {
		if c.Customers[i].ID == id {
			return &c.Customers[i], true
		}
	}
	return nil, false
}

// BranchByID looks a branch up by id
func (c *Catalog) BranchByID(id int64) (*Branch, bool) {
	for i := range c.Branches {
		if c.Branches[i].ID == id {
			return &c.Branches[i], true
		}
	}
	return nil, false
}

// RoomsByBranch returns the rooms of a branch (branch -> room mapping)
func (c *Catalog) RoomsByBranch(branchID int64) []Room {
	rooms := make([]Room, 0)
	for _, r := range c.Rooms {
		if r.BranchID == branchID {
			rooms = append(rooms, r)
		}
	}
	return rooms
}

// BranchOfRoom returns the branch a room belongs to (room -> branch mapping)
func (c *Catalog) BranchOfRoom(roomName string) (int64, bool) {
	for _, r := range c.Rooms {
		if r.Name == roomName {
			return r.BranchID, true
		}
	}
	return 0, false
}

// StaffByBranch returns therapists of a branch
func (c *Catalog) StaffByBranch(branchID int64) []Staff {
	staff := make([]Staff, 0)
	for _, s := range c.Staff {
		if s.BranchID == branchID {
			staff = append(staff, s)
		}
	}
	return staff
}
