package request

// IdentifyRequest carries the profile as the chat gateway saw it. The id
// is the gateway's stable numeric user id.
type IdentifyRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	OwnerHandle string `json:"owner_handle"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	OwnerHandle string `json:"owner_handle"`
}
