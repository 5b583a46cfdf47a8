package model

// ContactRequest is one half of the handshake: Requester asked UserID
// to become a contact and UserID has not accepted yet.
type ContactRequest struct {
	UserID      int  `json:"userID"`
	RequesterID int  `json:"requesterID"`
	Accepted    bool `json:"accepted"`
}

type RequestContact struct {
	Username string `json:"username" validate:"required,min=9,max=15"`
}

type Contacts struct {
	Contacts []UserView `json:"contacts"`
}
