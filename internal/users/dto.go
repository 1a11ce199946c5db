package users

// CreateUserDTO carries the fields persisted for a new account.
type CreateUserDTO struct {
	Email        string
	Name         string
	PasswordHash string
	IsStaff      bool
}
