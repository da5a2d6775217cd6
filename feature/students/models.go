package students

import "time"

// Student is the profile consumed by the upsolve flow.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Handle    string    `gorm:"size:32;index" json:"codeforcesHandle"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (Student) TableName() string {
	return "students"
}
