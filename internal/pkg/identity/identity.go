package identity

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/presensi-app/presensi-backend-go/internal/domain/user"
)

// Identity is the acting user extracted from the verified session
// claims. The core trusts these values completely; authentication
// happens upstream in the jwtauth verifier.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

// FromContext reads the acting identity from the jwtauth claims.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Identity{}, fmt.Errorf("role claim is missing or invalid")
	}

	return Identity{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.Role(role),
	}, nil
}
