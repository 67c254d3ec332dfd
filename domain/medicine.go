package domain

// Medicine schedule classifications. Schedule H and X drugs require a
// prescription at the point of sale.
const (
	ScheduleNone = ""
	ScheduleH    = "H"
	ScheduleX    = "X"
)

type Medicine struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Stock      int64   `db:"stock" json:"stock"`
	Price      float64 `db:"price" json:"price"`
	Batch      string  `db:"batch" json:"batch"`
	Supplier   string  `db:"supplier" json:"supplier"`
	ExpiryDate string  `db:"expiry_date" json:"expiryDate"`
	Schedule   string  `db:"schedule" json:"schedule,omitempty"`
	CreatedAt  string  `db:"created_at" json:"createdAt,omitempty"`
	UpdatedAt  string  `db:"updated_at" json:"updatedAt,omitempty"`

	// Derived from stock, expiry date and the current date on every read.
	// Never persisted, so they cannot go stale across a day boundary.
	DaysUntilExpiry int    `db:"-" json:"daysUntilExpiry"`
	IsLowStock      bool   `db:"-" json:"isLowStock"`
	IsExpiringSoon  bool   `db:"-" json:"isExpiringSoon"`
	IsExpired       bool   `db:"-" json:"isExpired"`
	Status          string `db:"-" json:"status,omitempty"`
}
