package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key. Called once from the composition
// root before the router starts serving.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// JWTSecret exposes the active signing key for the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var (
		user         models.User
		passwordHash string
	)

	err := intconfig.DB.QueryRow(`
        SELECT id, name, email, phone, password_hash, role, status
        FROM users
        WHERE email = ?
    `, utils.TrimOrEmpty(req.Email)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&passwordHash,
		&user.Role,
		&user.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	name := utils.NormalizeSpace(req.Name)
	email := utils.TrimOrEmpty(req.Email)
	if name == "" || email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	role := utils.TrimOrEmpty(req.Role)
	switch role {
	case "":
		role = models.RolePassenger
	case models.RolePassenger, models.RoleDriver:
	default:
		// admin accounts are provisioned out of band
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be passenger or driver"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO users (name, email, phone, password_hash, role, status)
        VALUES (?,?,?,?,?,'active')
    `, name, email, utils.TrimOrEmpty(req.Phone), string(hash), role)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "failed to create user: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"user": models.User{
			ID:     id,
			Name:   name,
			Email:  email,
			Phone:  utils.TrimOrEmpty(req.Phone),
			Role:   role,
			Status: "active",
		},
	})
}
