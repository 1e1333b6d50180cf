package domain

// Session pairs a bearer token with the user snapshot it was issued for.
// Token and user are set and cleared together: a half session (token without
// user, or the reverse) only exists transiently while a corrupted snapshot is
// being torn down.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Anonymous reports whether no session material is held.
func (s Session) Anonymous() bool { return s.Token == "" }

// Admin reports whether the session belongs to an ADMIN user.
func (s Session) Admin() bool { return s.User != nil && s.User.UserRole == RoleAdmin }

// DisplayName returns the user's name, falling back to "User" when no
// snapshot is available.
func (s Session) DisplayName() string {
	if s.User == nil || s.User.Name == "" {
		return "User"
	}
	return s.User.Name
}
