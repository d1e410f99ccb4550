package domain

// User represents the user record in the system.
// Corresponds to the 'users' table in the database.
type User struct {
	Username string `json:"username" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Name     string `json:"name" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// UserPublic is the wire-outbound projection of a User.
type UserPublic struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UserCreate is the wire-inbound shape for creating a user.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Public maps the storage record to its API projection.
func (u User) Public() UserPublic {
	return UserPublic{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}

// Record maps the inbound shape to a storage record.
func (c UserCreate) Record() User {
	return User{
		Username: c.Username,
		Email:    c.Email,
		Name:     c.Name,
	}
}
