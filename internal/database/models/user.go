package models

// User represents a Pandoro account
type User struct {
	BaseModel
	Name       string `json:"name" gorm:"not null;size:20"`
	Surname    string `json:"surname" gorm:"not null;size:30"`
	Email      string `json:"email" gorm:"uniqueIndex;not null;size:50"`
	Password   string `json:"-" gorm:"not null;size:72"`
	ProfilePic string `json:"profilePic" gorm:"size:255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// CompleteName returns name and surname joined by a space
func (u *User) CompleteName() string {
	return u.Name + " " + u.Surname
}
