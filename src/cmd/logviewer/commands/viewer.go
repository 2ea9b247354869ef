// FILE: logviewer/src/cmd/logviewer/commands/viewer.go
package commands

import (
	"fmt"
	"time"

	"logviewer/src/internal/config"
	"logviewer/src/internal/service"

	"github.com/lixenwraith/log"
)

// viewerSession bundles what one-shot commands need to read logs
type viewerSession struct {
	cfg     *config.Config
	service *service.Service
	logger  *log.Logger
}

// openViewer loads configuration and builds a service with a silent logger
func openViewer(configPath string, overrides []string) (*viewerSession, error) {
	cfg, err := config.Load(configPath, overrides)
	if err != nil {
		return nil, err
	}

	logger := log.NewLogger()
	if err := logger.InitWithDefaults("disable_file=true", "enable_stdout=false", "level=255"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := service.NewService(&cfg.Viewer, logger)
	if err != nil {
		_ = logger.Shutdown(time.Second)
		return nil, err
	}

	return &viewerSession{cfg: cfg, service: svc, logger: logger}, nil
}

func (s *viewerSession) Close() {
	_ = s.logger.Shutdown(time.Second)
}
