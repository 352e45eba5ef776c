package dto

// SignupRequest carries both name spellings: the admin endpoints use
// "adminName" and the user endpoints use "name". The handler picks the
// one matching the route's role.
type SignupRequest struct {
	AdminName string `json:"adminName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
