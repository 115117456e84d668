package postgres

import (
	repo "github.com/castanedalj/tienda-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Products  repo.Products
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Products:  &productsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
