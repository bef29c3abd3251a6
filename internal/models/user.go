package models

// User represents a registered user of the store.
// Each user owns exactly one cart, created together with the user at
// registration time.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	CartID   uint   `json:"-"`
	Cart     *Cart  `json:"-" gorm:"foreignKey:CartID"`
}
