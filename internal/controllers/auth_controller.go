package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"apt_planner/internal/middleware"
	"apt_planner/internal/models"
	"apt_planner/internal/repository"
)

const (
	devUserEmail  = "dev@example.com"
	devUserName   = "Developer User"
	devUserAvatar = "https://ui-avatars.com/api/?name=Developer+User"
)

type AuthController struct {
	users     UserStore
	devBypass bool
}

func NewAuthController(users UserStore, devBypass bool) *AuthController {
	return &AuthController{users: users, devBypass: devBypass}
}

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (a *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     models.RoleTraveler,
	}
	if err := a.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		logrus.WithError(err).Error("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	a.issue(c, http.StatusCreated, user)
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.users.ByEmail(c.Request.Context(), body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			logrus.WithError(err).Error("login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	a.issue(c, http.StatusOK, user)
}

// Dev signs in as a fixed developer account. Only mounted when the dev
// bypass is enabled.
func (a *AuthController) Dev(c *gin.Context) {
	if !a.devBypass {
		c.JSON(http.StatusNotFound, gin.H{"error": "dev login disabled"})
		return
	}
	user, err := a.users.FirstOrCreate(c.Request.Context(), models.User{
		Name:      devUserName,
		Email:     devUserEmail,
		AvatarURL: devUserAvatar,
		Role:      models.RoleTraveler,
	})
	if err != nil {
		logrus.WithError(err).Error("dev login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create dev user"})
		return
	}
	logrus.WithField("user_id", user.ID).Warn("Dev auth bypass used")
	a.issue(c, http.StatusOK, user)
}

func (a *AuthController) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}
	user, err := a.users.ByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (a *AuthController) issue(c *gin.Context, status int, user models.User) {
	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(middleware.TokenTTL().Seconds()), "/", "", false, true)
	c.JSON(status, gin.H{
		"token": token,
		"user":  user,
	})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// EnsureAdmin creates the admin account on first boot. An existing account
// with that email is left untouched.
func EnsureAdmin(ctx context.Context, users UserStore, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := users.ByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{Name: "Administrator", Email: email, Password: hashed, Role: models.RoleAdmin}
	if err := users.Create(ctx, &admin); err != nil && !errors.Is(err, repository.ErrEmailTaken) {
		return err
	}
	logrus.WithField("email", email).Info("Admin account created")
	return nil
}
