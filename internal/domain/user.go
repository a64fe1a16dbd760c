package domain

// User represents a registered user of the recipes application.
// Users are loaded once at startup and never mutated at runtime.
//
// NOTE: the password is stored and compared in plaintext, mirroring the
// seed dataset this service fronts. Hardening credential storage is an
// acknowledged gap, out of scope for this service.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never expose the password in JSON
	Username string `json:"username"`

	// Favorites holds the ids of the user's favorite recipes.
	Favorites []int `json:"favorites"`
}

// IsFavorite reports whether the given recipe id is in the user's
// favorites set.
func (u *User) IsFavorite(recipeID int) bool {
	for _, id := range u.Favorites {
		if id == recipeID {
			return true
		}
	}
	return false
}
