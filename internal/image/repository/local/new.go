package local

import (
	"fmt"

	"hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/log"
)

type implRepository struct {
	root         string
	publicPrefix string
	l            log.Logger
}

// New creates a Repository that keeps images under root/<kind>/<name>.
// root is expected to be served at publicPrefix.
func New(root, publicPrefix string, l log.Logger) repository.Repository {
	if root == "" {
		panic("image/repository/local: root is required")
	}
	return &implRepository{root: root, publicPrefix: publicPrefix, l: l}
}

func (r *implRepository) Scheme() model.ImageScheme {
	return model.ImageSchemeLocal
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("image/repository/local.%s", method)
}
