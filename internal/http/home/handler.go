// Package home serves the landing route.
package home

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/devsecops-demo/container-scan-demo/internal/platform/logging"
)

// Register wires the landing route into the provided API router.
func Register(api huma.API, version string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-home",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome message and application status",
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "home get", zap.String("path", "/"))
		return &Output{Body: HomeData{
			Message: "Welcome to DevSecOps Container Security Demo!",
			Status:  "running",
			Version: version,
		}}, nil
	})
}
