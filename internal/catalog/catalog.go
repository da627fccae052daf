package catalog

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

type ProductRepo interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
}

// DBSource reads the active products from the database on every call.
type DBSource struct {
	repo ProductRepo
}

func NewDBSource(repo ProductRepo) *DBSource {
	return &DBSource{repo: repo}
}

func (s *DBSource) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return normalize(products)
}

type fileCatalog struct {
	Products []domain.Product `yaml:"products"`
}

// FileSource reads products from a YAML file. The file is re-read on every
// call so price edits apply without a restart.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Products(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		zap.L().Error("can't read catalog file", zap.String("path", s.path), zap.Error(err))
		return nil, domain.Unavailable(err, "read catalog file")
	}

	var file fileCatalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		zap.L().Error("can't parse catalog file", zap.String("path", s.path), zap.Error(err))
		return nil, domain.Unavailable(err, "parse catalog file")
	}

	products, err := normalize(file.Products)
	if err != nil {
		zap.L().Error("invalid catalog file", zap.String("path", s.path), zap.Error(err))
		return nil, err
	}
	return products, nil
}

// normalize rejects the whole catalog when a price is negative or has more
// than two decimal places.
func normalize(products []domain.Product) ([]domain.Product, error) {
	for i := range products {
		p := &products[i]
		if p.Price.IsNegative() || !p.Price.Equal(p.Price.Truncate(2)) {
			return nil, domain.Unavailable(errors.Newf("product %s has price %s", p.ID, p.Price), "invalid catalog")
		}
		if !p.SpecialOffer {
			continue
		}
		if p.OfferType == "" {
			p.OfferType = domain.OfferBuy10Get2
			continue
		}
		if p.OfferType != domain.OfferBuy10Get2 {
			zap.L().Warn("unknown offer type, product priced as regular",
				zap.String("product", p.ID), zap.String("offerType", p.OfferType))
		}
	}
	return products, nil
}
