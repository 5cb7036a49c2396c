// api/model/user.go
package model

import "time"

// User is a registered account. Password holds the bcrypt hash and never
// leaves the API.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Age       int       `json:"age" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null;default:user"`
	CityID    uint      `json:"-" gorm:"not null"`
	City      *City     `json:"city,omitempty"`
	Skills    []Skill   `json:"skills,omitempty" gorm:"many2many:user_skills"`
	Posts     []Post    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type City struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Skill struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the registration payload. The password rule is the custom
// validator registered in util.ValidationUtil.
type UserCreate struct {
	Name     string `json:"name" form:"name" binding:"required,min=3,max=20"`
	Age      int    `json:"age" form:"age" binding:"min=0,max=100"`
	Password string `json:"password" form:"password" binding:"required,password"`
	City     string `json:"city" form:"city" binding:"required"`
}

type SkillAdd struct {
	Skill string `json:"skill" form:"skill" binding:"required"`
}

type PostCreate struct {
	Content string `json:"content" form:"content" binding:"required,max=1000"`
}
