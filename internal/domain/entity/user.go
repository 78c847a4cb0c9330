package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User is the credential record. Rows are soft-deleted only.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    Role           `gorm:"column:role_id;type:smallint;not null;index" json:"role"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"type:text;not null" json:"-"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Gender    *string        `gorm:"type:varchar(10)" json:"gender"`
	Birthdate *time.Time     `gorm:"type:date" json:"birthdate"`
	PhoneNum  *string        `gorm:"type:varchar(20)" json:"phone_num"`
	Address   *string        `gorm:"type:text" json:"address"`
	IsActive  *bool          `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active reports whether the account may authenticate. A nil flag is the column default.
func (u *User) Active() bool {
	if u.DeletedAt.Valid {
		return false
	}
	return u.IsActive == nil || *u.IsActive
}
