// Package health serves the liveness route used by the scan pipeline.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/devsecops-demo/container-scan-demo/internal/platform/logging"
)

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "get-health",
		Method:        http.MethodGet,
		Path:          "/health",
		Summary:       "Liveness check",
		DefaultStatus: http.StatusOK,
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "health check", zap.String("path", "/health"))
	return &Output{Body: HealthData{Status: "healthy", Service: "devsecops-demo"}}, nil
}
