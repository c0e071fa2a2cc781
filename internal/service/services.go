package service

import (
	"github.com/xolan/torchtimer/internal/config"
	"github.com/xolan/torchtimer/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Board  *BoardService
	Config *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	statePath, err := storage.GetStatePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(statePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(statePath, configPath string, cfg config.Config) *Services {
	return &Services{
		Board:  NewBoardService(statePath, cfg),
		Config: NewConfigService(configPath, cfg),
	}
}
