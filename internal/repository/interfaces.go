package repository

import (
	"errors"

	"github.com/castanedalj/tienda-backend/internal/models"
)

// ErrNotFound reports a lookup that matched no record, as opposed to a
// persistence failure.
var ErrNotFound = errors.New("not found")

type Users interface {
	Create(username, passwordHash, role string) (models.User, error)
	GetByUsername(username string) (models.User, error)
}

type Products interface {
	Create(name string, price float64, category string) (models.Product, error)
	List() ([]models.Product, error)
	Update(id string, patch models.ProductPatch) error
	Delete(id string) error
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
