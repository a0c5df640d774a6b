// Package routes wires the HTTP surface of the demo service.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/devsecops-demo/container-scan-demo/internal/http/health"
	"github.com/devsecops-demo/container-scan-demo/internal/http/home"
	"github.com/devsecops-demo/container-scan-demo/internal/http/info"
)

// Register wires all HTTP routes into the provided API router. version is the
// application version reported by the landing route.
func Register(api huma.API, version string) {
	home.Register(api, version)
	health.Register(api)
	info.Register(api)
}
