package domain

// UserRole classifies what an authenticated actor may do.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleUser      UserRole = "USER"
	RoleAnonymous UserRole = "ANONYMOUS"
)

// UserStatus is the backend-owned account lifecycle state.
type UserStatus string

const (
	StatusActive    UserStatus = "ACTIVE"
	StatusInactive  UserStatus = "INACTIVE"
	StatusSuspended UserStatus = "SUSPENDED"
	StatusDeleted   UserStatus = "DELETED"
)

// User is the cached read-only copy of a backend account. The backend owns
// every field; the client never mutates a User locally.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	MSISDN       string     `json:"msisdn"`
	EmailAddress string     `json:"emailAddress"`
	Username     string     `json:"username"`
	UserStatus   UserStatus `json:"userStatus"`
	UserRole     UserRole   `json:"userRole"`
	Locked       bool       `json:"locked"`
	Enabled      bool       `json:"enabled"`
}

// LoginRequest carries credentials for POST /token.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the session material returned by a successful login.
type LoginResponse struct {
	User  User   `json:"user"  validate:"required"`
	Token string `json:"token" validate:"required"`
}

// RegistrationRequest carries a new-account application for POST /registration.
type RegistrationRequest struct {
	Name     string `json:"name"     validate:"required"`
	MSISDN   string `json:"msisdn"   validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RESTResponse is the generic {error, message} envelope used by the
// registration family of endpoints.
type RESTResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
