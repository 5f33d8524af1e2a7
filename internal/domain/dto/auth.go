// Package dto defines Data Transfer Objects for authentication.
package dto

// RoleAdmin is the only role the service knows; catalog administration is
// the sole protected surface.
const RoleAdmin = "admin"

// LoginRequest represents the JSON request body for the admin login endpoint.
//
// @Description Request to authenticate the catalog administrator
// @Example {"username": "admin", "password": "password123"}
type LoginRequest struct {
	// Username is the admin account name.
	Username string `json:"username" binding:"required" example:"admin"`
	// Password is the admin password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
// @Example {"token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."}
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
} // @name LoginResponse

// Claims represents JWT claims (kept in dto to avoid import cycles).
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
