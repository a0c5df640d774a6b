package home

// HomeData models the response payload for the landing route.
type HomeData struct {
	Message string `json:"message" doc:"Welcome message" example:"Welcome to DevSecOps Container Security Demo!"`
	Status  string `json:"status" doc:"Application run state" example:"running"`
	Version string `json:"version" doc:"Application version" example:"1.0.0"`
}

// Output is the response wrapper for the landing endpoint.
type Output struct {
	Body HomeData
}
