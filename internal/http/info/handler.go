// Package info serves pipeline metadata about this workload.
package info

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/devsecops-demo/container-scan-demo/internal/platform/logging"
)

// Register wires the info route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/info", getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "info get", zap.String("path", "/info"))
	return &Output{Body: InfoData{
		App:         "DevSecOps Demo Application",
		Description: "Sample app for container vulnerability scanning",
		Security:    "Scanned with Trivy",
		Pipeline:    "GitHub Actions",
	}}, nil
}
