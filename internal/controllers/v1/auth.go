package v1

import (
	"net/http"
	"time"

	"github.com/centavo/backend/internal/auth"
	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the routes for signup and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, tokens *auth.TokenService) {
	r.OPTIONS("/registration", OptionsRegistration)
	r.POST("/registration", Registration)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login(tokens))
}

// RegistrationEditable represents all user configurable parameters of a signup
type RegistrationEditable struct {
	Email    string `json:"email" example:"jane@example.com"` // Email address, unique over all users
	Password string `json:"password" example:"correct horse battery staple"`
}

type User struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
}

type RegistrationResponse struct {
	Data  *User   `json:"data"`  // The created user
	Error *string `json:"error"` // The error, if any occurred
}

type LoginData struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`  // The bearer token
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-06T14:00:00Z"` // Time the token expires
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`  // The issued token
	Error *string    `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/registration [options]
func OptionsRegistration(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Sign up
// @Description	Creates a new user with a hashed password and seeds the default category set
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	RegistrationResponse
// @Failure		400		{object}	RegistrationResponse
// @Failure		409		{object}	RegistrationResponse
// @Failure		500		{object}	RegistrationResponse
// @Param			user	body		RegistrationEditable	true	"User"
// @Router			/v1/registration [post]
func Registration(c *gin.Context) {
	var editable RegistrationEditable

	err := httputil.BindData(c, &editable)
	if err == nil && editable.Email == "" {
		err = errEmailNotSet
	}
	if err == nil && editable.Password == "" {
		err = errPasswordNotSet
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegistrationResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password, 0)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, RegistrationResponse{Error: &e})
		return
	}

	user := models.User{
		Email:        editable.Email,
		PasswordHash: hash,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		return models.CreateDefaultCategories(tx, user.ID)
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegistrationResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, RegistrationResponse{
		Data: &User{
			DefaultModel: user.DefaultModel,
			Email:        user.Email,
		},
	})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Param			credentials	body		RegistrationEditable	true	"Credentials"
// @Router			/v1/login [post]
func Login(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable RegistrationEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), LoginResponse{Error: &e})
			return
		}

		user, err := auth.Authenticate(models.DB, editable.Email, editable.Password)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), LoginResponse{Error: &e})
			return
		}

		token, expiresAt, err := tokens.Issue(user.Email)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Data: &LoginData{
				Token:     token,
				ExpiresAt: expiresAt,
			},
		})
	}
}
