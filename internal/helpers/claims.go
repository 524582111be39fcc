package helpers

const (
	RoleOwner  = "owner"
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

type EnhancedClaims struct {
	*CustomClaims
	Role   string `json:"role"`
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
}

func NewEnhancedClaims(c *CustomClaims) *EnhancedClaims {
	return &EnhancedClaims{
		CustomClaims: c,
		Role:         c.AppRole(),
		UserID:       c.Subject,
		Email:        c.Email,
	}
}

// Helper methods for role checking
func (ec *EnhancedClaims) IsAdmin() bool {
	return ec.Role == RoleAdmin
}

func (ec *EnhancedClaims) IsOwner() bool {
	return ec.Role == RoleOwner
}

func (ec *EnhancedClaims) HasRole(roles ...string) bool {
	for _, r := range roles {
		if ec.Role == r {
			return true
		}
	}
	return false
}

func (ec *EnhancedClaims) GetSafeRole() string {
	if ec.Role == "" {
		return "guest"
	}
	return ec.Role
}
