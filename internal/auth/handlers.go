package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles the login, registration and logout pages.
type AuthController struct {
	service        *Service
	sessionManager *SessionManager
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, sessionManager *SessionManager) *AuthController {
	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", ac.LoginPage)
	router.POST("/login", ac.Login)
	router.GET("/register", ac.RegisterPage)
	router.POST("/register", ac.Register)
	router.GET("/logout", ac.Logout)
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	// Already authenticated, nothing to do here
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
	})
}

// Login handles the login form submission. Bad credentials re-render the
// form with a fixed error message, no redirect.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.service.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidPassword) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Title":    "Login",
				"Username": username,
				"Error":    "Invalid username or password",
			})
			return
		}
		c.String(http.StatusInternalServerError, "Error logging in: %s", err.Error())
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		c.String(http.StatusInternalServerError, "Error creating session: %s", err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/index")
}

// RegisterPage renders the registration form.
func (ac *AuthController) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title": "Register",
	})
}

// Register handles the registration form submission.
func (ac *AuthController) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := ac.service.Register(username, password)
	if err != nil {
		errorMsg := "Failed to register"
		switch {
		case errors.Is(err, ErrUserExists):
			errorMsg = "Username is already taken"
		case errors.Is(err, ErrUsernameRequired):
			errorMsg = "Username is required"
		case errors.Is(err, ErrPasswordRequired):
			errorMsg = "Password is required"
		default:
			c.String(http.StatusInternalServerError, "Error registering: %s", err.Error())
			return
		}

		c.HTML(http.StatusOK, "register.html", gin.H{
			"Title":    "Register",
			"Username": username,
			"Error":    errorMsg,
		})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Logout destroys the session and redirects to login.
func (ac *AuthController) Logout(c *gin.Context) {
	_ = ac.sessionManager.DestroySession(c.Request)
	c.Redirect(http.StatusFound, "/login")
}
