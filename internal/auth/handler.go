package auth

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/avdeyev/ranobe-hub/internal/web"
	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/logger"
	"github.com/avdeyev/ranobe-hub/pkg/models"
	"github.com/avdeyev/ranobe-hub/pkg/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Secret    string
	AvatarDir string
	log       *logger.Logger
}

func NewHandler(secret, avatarDir string) *Handler {
	return &Handler{
		Secret:    secret,
		AvatarDir: avatarDir,
		log:       logger.GetLogger().WithContext("component", "auth"),
	}
}

func (h *Handler) RegisterPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "register.html", gin.H{"Error": formError(err)})
		return
	}

	// Duplicate email silently redisplays the form; the user table must be
	// left untouched.
	var existing int64
	err := database.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, form.Email).Scan(&existing)
	if err != nil {
		h.log.Error("register_lookup_failed", "error", err.Error())
		web.HTML(c, http.StatusOK, "register.html", nil)
		return
	}
	if existing > 0 {
		web.HTML(c, http.StatusOK, "register.html", gin.H{"Error": "Email is already registered"})
		return
	}

	avatar := utils.DefaultAvatar
	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		if !utils.AllowedImageExt(file.Filename) {
			web.HTML(c, http.StatusOK, "register.html", gin.H{"Error": "Avatar must be a JPG or PNG image"})
			return
		}
		name := utils.AvatarFilename(file.Filename)
		if err := os.MkdirAll(h.AvatarDir, 0o755); err != nil {
			h.log.Error("avatar_dir_failed", "error", err.Error())
			web.HTML(c, http.StatusOK, "register.html", nil)
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(h.AvatarDir, name)); err != nil {
			h.log.Error("avatar_save_failed", "error", err.Error())
			web.HTML(c, http.StatusOK, "register.html", nil)
			return
		}
		avatar = name
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		h.log.Error("password_hash_failed", "error", err.Error())
		web.HTML(c, http.StatusOK, "register.html", nil)
		return
	}

	res, err := database.DB.Exec(
		`INSERT INTO users (username, email, password_hash, avatar) VALUES (?, ?, ?, ?)`,
		form.Username, form.Email, hash, avatar)
	if err != nil {
		h.log.Error("register_insert_failed", "error", err.Error())
		web.HTML(c, http.StatusOK, "register.html", nil)
		return
	}

	userID, err := res.LastInsertId()
	if err != nil {
		h.log.Error("register_id_failed", "error", err.Error())
		web.HTML(c, http.StatusOK, "register.html", nil)
		return
	}

	if err := establishSession(c, userID, h.Secret, false); err != nil {
		h.log.Error("session_issue_failed", "error", err.Error())
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) LoginPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "login.html", gin.H{"Next": c.Query("next")})
}

func (h *Handler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		web.HTML(c, http.StatusOK, "login.html", gin.H{"Error": formError(err), "Next": c.Query("next")})
		return
	}

	var user models.User
	row := database.DB.QueryRow(
		`SELECT id, username, email, password_hash, avatar, created_at FROM users WHERE email = ?`, form.Email)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Avatar, &user.CreatedAt)

	// One generic message regardless of whether the account exists.
	if err != nil || utils.CheckPassword(user.PasswordHash, form.Password) != nil {
		web.HTML(c, http.StatusOK, "login.html", gin.H{
			"Flash": &web.Flash{Category: "danger", Message: "Invalid email or password"},
			"Next":  c.Query("next"),
		})
		return
	}

	if err := establishSession(c, user.ID, h.Secret, form.RememberMe); err != nil {
		h.log.Error("session_issue_failed", "error", err.Error())
		web.HTML(c, http.StatusOK, "login.html", nil)
		return
	}

	next := c.Query("next")
	if decoded, err := url.QueryUnescape(next); err == nil {
		next = decoded
	}
	if next == "" || next[0] != '/' {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) Logout(c *gin.Context) {
	clearSession(c)
	c.Redirect(http.StatusFound, "/")
}

func formError(err error) string {
	if err == nil {
		return ""
	}
	return "Please fill in all required fields correctly"
}
