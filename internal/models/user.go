package models

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Profile *Profile   `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Roles   []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
}

// UserRole is a role assignment row. The presence of an 'admin' row
// grants elevated access; plain users have no row or a 'user' row.
type UserRole struct {
	ID     string  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID string  `gorm:"not null;index;uniqueIndex:idx_user_role" json:"user_id"`
	Role   AppRole `gorm:"type:varchar(20);not null;default:'user';uniqueIndex:idx_user_role" json:"role"`
}

type Profile struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatar_url"`
}
