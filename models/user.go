package models

// User is a registered account. The username doubles as the primary key,
// and the nickname carries its own unique index, so both are enforced by
// the database regardless of any pre-insert existence checks.
type User struct {
	ID           string `gorm:"primaryKey;size:100" json:"user_id"`
	PasswordHash string `gorm:"size:2000;not null" json:"-"`
	Nickname     string `gorm:"size:20;uniqueIndex;not null" json:"nickname"`
}

func (User) TableName() string {
	return "users"
}
