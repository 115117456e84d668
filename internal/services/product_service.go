package services

import (
	"github.com/castanedalj/tienda-backend/internal/metrics"
	"github.com/castanedalj/tienda-backend/internal/models"
	repo "github.com/castanedalj/tienda-backend/internal/repository"
	"github.com/castanedalj/tienda-backend/internal/worker"
)

type ProductService struct {
	r   repo.Products
	log repo.AuditLogs
	wp  *worker.Pool
}

func NewProductService(r repo.Products, l repo.AuditLogs, wp *worker.Pool) *ProductService {
	return &ProductService{r: r, log: l, wp: wp}
}

// audit writes are fire-and-forget: they ride the worker pool and a failure
// never fails the request that produced them.
func (s *ProductService) audit(entityID, action string, details map[string]any) {
	metrics.AuditQueueDepth.Inc()
	s.wp.Submit(func() {
		defer metrics.AuditQueueDepth.Dec()
		_ = s.log.Create(models.AuditLog{
			EntityType: "product",
			EntityID:   &entityID,
			Action:     action,
			Details:    details,
		})
	})
}

func (s *ProductService) List() ([]models.Product, error) {
	return s.r.List()
}

func (s *ProductService) Create(name string, price float64, category string, by string) (models.Product, error) {
	p, err := s.r.Create(name, price, category)
	if err != nil {
		return models.Product{}, err
	}
	metrics.ProductMutations.WithLabelValues("create").Inc()
	s.audit(p.ID, "created", map[string]any{"name": p.Name, "by": by})
	return p, nil
}

func (s *ProductService) Update(id string, patch models.ProductPatch, by string) error {
	if err := s.r.Update(id, patch); err != nil {
		return err
	}
	metrics.ProductMutations.WithLabelValues("update").Inc()
	s.audit(id, "updated", map[string]any{"by": by})
	return nil
}

func (s *ProductService) Delete(id string, by string) error {
	if err := s.r.Delete(id); err != nil {
		return err
	}
	metrics.ProductMutations.WithLabelValues("delete").Inc()
	s.audit(id, "deleted", map[string]any{"by": by})
	return nil
}
