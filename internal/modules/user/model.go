package user

import "time"

type RoleRecord struct {
	ID          uint    `gorm:"primaryKey;column:id"`
	Name        string  `gorm:"unique;size:50;not null;column:nombre"`
	Description *string `gorm:"column:descripcion"`
}

func (RoleRecord) TableName() string { return "roles" }

type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string    `gorm:"size:100;not null;column:nombre" json:"nombre"`
	LastName     string    `gorm:"size:100;not null;column:apellido" json:"apellido"`
	Email        string    `gorm:"unique;size:150;not null;column:email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Phone        *string   `gorm:"size:30;column:telefono" json:"telefono,omitempty"`
	Active       bool      `gorm:"default:true;column:activo" json:"activo"`
	RoleID       uint      `gorm:"not null;column:rol_id" json:"rol_id"`
	RoleName     string    `gorm:"->;column:rol_nombre" json:"rol_nombre"`
	CreatedAt    time.Time `gorm:"column:creado_en" json:"creado_en"`
	UpdatedAt    time.Time `gorm:"column:actualizado_en" json:"actualizado_en"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) Role() Role {
	return ParseRole(u.RoleName)
}
