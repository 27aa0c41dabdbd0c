package controllers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/Kariqs/dukani-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost       = 10
	sessionCookie    = "session"
	sessionLifetime  = 7 * 24 * time.Hour
	fallbackJWTKey   = "dev_secret_key"
	msgMissingSignup = "Missing fields"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func generateSessionToken(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"phone": user.Phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(sessionLifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// Signup registers a user with a single identifier. Whether the identifier is
// treated as an email or a phone number is decided by format-sniffing it.
func Signup(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signupData models.SignupData
		if err := ctx.ShouldBindJSON(&signupData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgMissingSignup)
			return
		}
		if signupData.Name == "" || signupData.Identifier == "" || signupData.Password == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, msgMissingSignup)
			return
		}

		isEmail := emailPattern.MatchString(signupData.Identifier)

		identifierColumn := "phone = ?"
		if isEmail {
			identifierColumn = "email = ?"
		}
		var existing models.User
		result := db.Where(identifierColumn, signupData.Identifier).Find(&existing)
		if result.Error != nil {
			abortInternal(ctx, msgInternalServerError, result.Error)
			return
		}
		if result.RowsAffected > 0 {
			sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
			return
		}

		hashedPassword, err := hashPassword(signupData.Password)
		if err != nil {
			abortInternal(ctx, msgInternalServerError, err)
			return
		}

		user := models.User{
			Name:     signupData.Name,
			Password: hashedPassword,
		}
		if isEmail {
			user.Email = &signupData.Identifier
		} else {
			user.Phone = &signupData.Identifier
		}

		if err := db.Create(&user).Error; err != nil {
			abortInternal(ctx, msgInternalServerError, err)
			return
		}

		if jwtSecret == "" {
			jwtSecret = fallbackJWTKey
		}
		token, err := generateSessionToken(user, jwtSecret)
		if err != nil {
			abortInternal(ctx, msgInternalServerError, err)
			return
		}

		secure := gin.Mode() == gin.ReleaseMode
		ctx.SetCookie(sessionCookie, token, int(sessionLifetime.Seconds()), "/", "", secure, true)

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"phone": user.Phone,
			},
		})
	}
}
