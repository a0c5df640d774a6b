package health

// HealthData models the response payload for the health route.
type HealthData struct {
	Status  string `json:"status" doc:"Health status" example:"healthy"`
	Service string `json:"service" doc:"Service identifier" example:"devsecops-demo"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body HealthData
}
