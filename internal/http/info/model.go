package info

// InfoData models the response payload for the info route.
type InfoData struct {
	App         string `json:"app" doc:"Application name" example:"DevSecOps Demo Application"`
	Description string `json:"description" doc:"What this workload is for" example:"Sample app for container vulnerability scanning"`
	Security    string `json:"security" doc:"Image scanning tool" example:"Scanned with Trivy"`
	Pipeline    string `json:"pipeline" doc:"CI pipeline running the scan" example:"GitHub Actions"`
}

// Output is the response wrapper for the info endpoint.
type Output struct {
	Body InfoData
}
