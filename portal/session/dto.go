package session

type LoginRequest struct {
	Role string `json:"role" validate:"required"`
}

type NavigateRequest struct {
	View string `json:"view" validate:"required"`
}

type ToastResponse struct {
	Message string `json:"message"`
}

// StateResponse is the session projection the rendering layer polls.
type StateResponse struct {
	LoggedIn          bool           `json:"loggedIn"`
	Role              string         `json:"role"`
	View              string         `json:"view"`
	ActorID           string         `json:"actorId,omitempty"`
	ActorName         string         `json:"actorName,omitempty"`
	ProfileComplete   bool           `json:"profileComplete"`
	SelectedJobID     string         `json:"selectedJobId,omitempty"`
	SelectedStudentID string         `json:"selectedStudentId,omitempty"`
	Toast             *ToastResponse `json:"toast,omitempty"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}

type MatchResponse struct {
	Percentage  int    `json:"percentage"`
	Explanation string `json:"explanation"`
}

// ToStateResponse projects the session plus the toast banner.
func ToStateResponse(s Session, toastMessage string, toastVisible bool) StateResponse {
	resp := StateResponse{
		LoggedIn:          s.LoggedIn,
		Role:              string(s.Role),
		View:              string(s.View),
		ActorID:           s.ActorID.String(),
		ActorName:         s.ActorName,
		ProfileComplete:   s.ProfileComplete(),
		SelectedJobID:     s.SelectedJobID.String(),
		SelectedStudentID: s.SelectedStudentID.String(),
	}
	if toastVisible {
		resp.Toast = &ToastResponse{Message: toastMessage}
	}
	return resp
}
