package domain

// RoleAdmin is the only role the admin API accepts.
const RoleAdmin = "admin"

// JWTClaims represents the JWT payload.
type JWTClaims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
}
