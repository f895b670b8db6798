// Package claims reads identity fields out of the verified JWT in the request
// context. Handlers and services ask for what they need instead of poking at
// the raw claims map.
package claims

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

var ErrEmployeeProfileRequired = errors.New("no employee profile is linked to this account")

func UserID(ctx context.Context) (string, error) {
	claims, err := fromContext(ctx)
	if err != nil {
		return "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// EmployeeID returns the employee linked to the authenticated user. Accounts
// without an employee profile (bare admin accounts) get
// ErrEmployeeProfileRequired.
func EmployeeID(ctx context.Context) (string, error) {
	claims, err := fromContext(ctx)
	if err != nil {
		return "", err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", ErrEmployeeProfileRequired
	}

	return employeeID, nil
}

func fromContext(ctx context.Context) (map[string]interface{}, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return claims, nil
}
