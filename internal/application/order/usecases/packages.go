package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/order/dto"
	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// ListPackagesUseCase returns the active catalog, fewest credits first.
// The cache is optional and its failures fall through to the database.
type ListPackagesUseCase struct {
	packageRepo order.PackageRepository
	cache       PackageCache
	logger      logger.Interface
}

func NewListPackagesUseCase(packageRepo order.PackageRepository, cache PackageCache, logger logger.Interface) *ListPackagesUseCase {
	return &ListPackagesUseCase{
		packageRepo: packageRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *ListPackagesUseCase) Execute(ctx context.Context) ([]*dto.PackageResponse, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.GetActive(ctx)
		if err != nil {
			uc.logger.Warnw("package cache read failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	packages, err := uc.packageRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list packages", "error", err)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	resp := dto.ToPackageResponses(packages)

	if uc.cache != nil {
		if err := uc.cache.SetActive(ctx, resp); err != nil {
			uc.logger.Warnw("package cache write failed", "error", err)
		}
	}
	return resp, nil
}

// PackageSeed is one catalog entry, loadable from YAML.
type PackageSeed struct {
	Name           string `yaml:"name"`
	Slug           string `yaml:"slug"`
	Price          int64  `yaml:"price"`
	ListingCredits int    `yaml:"listing_credits"`
	Description    string `yaml:"description"`
}

// DefaultCatalog is the built-in package list seeded at startup.
func DefaultCatalog() []PackageSeed {
	return []PackageSeed{
		{
			Name:           "Starter 3 tin",
			Slug:           "starter-3",
			Price:          199000,
			ListingCredits: 3,
			Description:    "Thêm 3 lượt đăng, hiển thị thường",
		},
		{
			Name:           "Pro 5 tin",
			Slug:           "pro-5",
			Price:          299000,
			ListingCredits: 5,
			Description:    "Thêm 5 lượt đăng + ưu tiên xét duyệt",
		},
	}
}

// SeedPackagesUseCase upserts catalog entries by slug and drops the cached list.
type SeedPackagesUseCase struct {
	packageRepo order.PackageRepository
	cache       PackageCache
	logger      logger.Interface
}

func NewSeedPackagesUseCase(packageRepo order.PackageRepository, cache PackageCache, logger logger.Interface) *SeedPackagesUseCase {
	return &SeedPackagesUseCase{
		packageRepo: packageRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *SeedPackagesUseCase) Execute(ctx context.Context, seeds []PackageSeed) error {
	uc.logger.Infow("executing seed packages use case", "count", len(seeds))

	for _, s := range seeds {
		pkg, err := order.NewPackage(s.Name, s.Slug, s.Price, s.ListingCredits, s.Description)
		if err != nil {
			return fmt.Errorf("invalid package %q: %w", s.Slug, err)
		}
		if err := uc.packageRepo.Upsert(ctx, pkg); err != nil {
			return err
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate package cache", "error", err)
		}
	}
	return nil
}
