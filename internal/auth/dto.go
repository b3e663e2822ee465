package auth

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordDTO for bearer-authenticated password changes.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResponse mirrors the shape the front office consumes.
type LoginResponse struct {
	Token              string `json:"token"`
	UserType           string `json:"userType"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"mustChangePassword"`
	UserID             int64  `json:"userId"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	PhoneNumber        string `json:"phoneNumber"`
	Department         string `json:"department"`
	IsActive           bool   `json:"isActive"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d ChangePasswordDTO) Validate() error {
	if d.CurrentPassword == "" {
		return ValidationError{Msg: "currentPassword is required"}
	}
	if d.NewPassword == "" {
		return ValidationError{Msg: "newPassword is required"}
	}
	if len(d.NewPassword) < 8 {
		return ValidationError{Msg: "newPassword must be at least 8 characters"}
	}
	return nil
}
