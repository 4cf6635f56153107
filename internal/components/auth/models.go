package auth

import "time"

type (
	User struct {
		ID           int64     `json:"id"`
		FirstName    string    `json:"firstName"`
		LastName     string    `json:"lastName"`
		Email        string    `json:"email"`
		PasswordHash string    `json:"-"` // Never serialize password hash
		CreatedAt    time.Time `json:"createdAt"`
	}

	SignupRequest struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	AuthResponse struct {
		AccessToken string `json:"accessToken"`
		UserID      string `json:"userId"`
		Name        string `json:"name"`
		Email       string `json:"email"`
	}
)
