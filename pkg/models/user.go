package models

import "time"

// SuperuserID is granted blanket edit/delete rights over all content.
const SuperuserID int64 = 1

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type RegisterForm struct {
	Username      string `form:"username" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required"`
	PasswordAgain string `form:"password_again" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}
