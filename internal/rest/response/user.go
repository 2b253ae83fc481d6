package response

import "github.com/birdfeed/birdfeed/domain"

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

// FromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Image:    u.Image,
	}
}
