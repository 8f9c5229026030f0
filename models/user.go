package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the backend's view of the authenticated account. The portal never
// stores users; it only carries this read-replica per request.
type User struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Validate rejects payloads whose shape does not match the session contract.
func (u User) Validate() error {
	if u.UserID <= 0 {
		return ErrBadShape("user", "userId")
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return ErrBadShape("user", "role")
	}
	return nil
}
