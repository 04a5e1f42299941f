package models

// Category groups tasks for filtering. The set is open: stored values
// outside the known constants are kept as-is.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists the well-known categories in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryOther}

type Task struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Category  Category `json:"category"`
	GoalID    *int64   `json:"goal_id,omitempty"`
	CreatedOn string   `json:"created_on"` // YYYY-MM-DD format
}
