package account

import "time"

// Account represents a registered user of the marketplace.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Ref is a lightweight public reference to an account.
type Ref struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the public reference for the account.
func (a *Account) Ref() Ref {
	return Ref{ID: a.ID, Name: a.Name, Email: a.Email}
}
