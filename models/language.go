package models

// Language is an additional language spoken by a volunteer, with a
// self-reported fluency level. Read-only in the current API surface.
type Language struct {
	ID       int64  `json:"id"`
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
	UserID   int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Language model.
func (l Language) TableName() string {
	return "languages"
}
