package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=3,max=64"`
}

func signupHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "username and password are required")
			return
		}
		u, err := users.Signup(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

func loginHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			badRequest(c, "username and password are required")
			return
		}
		u, token, err := users.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
	}
}

func logoutHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.Logout(c.Request.Context(), sessionToken(c))
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func updateMeHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "username and password are required")
			return
		}
		u, err := users.UpdateProfile(c.Request.Context(), currentUser(c).ID, req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
