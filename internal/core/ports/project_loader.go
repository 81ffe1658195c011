package ports

import "go.trai.ch/kiln/internal/core/domain"

// ProjectLoader loads the project layout.
//
//go:generate mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project file in root, falling back to defaults when it is absent.
	Load(root string) (domain.Project, error)
}
