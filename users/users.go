package users

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/jrsteele09/dept-console/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// User is the staff identity record returned by the department API.
type User struct {
	ID             int              `json:"id"`                       // Unique identifier for the user
	Username       string           `json:"username"`                 // Login name
	Email          string           `json:"email,omitempty"`          // Contact email
	FullName       string           `json:"full_name,omitempty"`      // Display name
	NationalID     string           `json:"national_id,omitempty"`    // National identity number
	Phone          string           `json:"phone,omitempty"`          // Contact phone
	Department     string           `json:"department,omitempty"`     // Owning department
	Specialization string           `json:"specialization,omitempty"` // Teaching specialization
	Position       string           `json:"position,omitempty"`       // Job title
	IsActive       bool             `json:"is_active"`                // Inactive accounts cannot sign in
	LastLogin      *utils.Timestamp `json:"last_login,omitempty"`     // Last successful sign in
	CreatedAt      *utils.Timestamp `json:"created_at,omitempty"`     // Account creation time

	Roles       []string `json:"roles"`       // Role names, see RoleType
	Permissions []string `json:"permissions"` // Permission names, see Permission
}

// ProfileUpdate carries the profile fields a user may change on themselves.
// Nil fields are left out of the request body.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.Phone == nil
}

// HasRole reports whether role is one of the user's roles. A nil user has none.
func (u *User) HasRole(role string) bool {
	if u == nil || u.Roles == nil {
		return false
	}
	return slices.Contains(u.Roles, role)
}

// HasPermission reports whether permission is one of the user's permissions.
func (u *User) HasPermission(permission string) bool {
	if u == nil || u.Permissions == nil {
		return false
	}
	return slices.Contains(u.Permissions, permission)
}

// DisplayName returns the full name when set, the username otherwise.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Username
}

// Clone returns a deep copy so callers cannot mutate shared session state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	c.Permissions = slices.Clone(u.Permissions)
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	if u.CreatedAt != nil {
		t := *u.CreatedAt
		c.CreatedAt = &t
	}
	return &c
}

// ValidatePasswordStrength checks if password meets the department rules:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
// - Contains at least one special character
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasNumber = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	if !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
