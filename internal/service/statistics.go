package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	breakdownCacheTTL = 30 * time.Second

	defaultMonths    = 12
	maxMonths        = 36
	defaultPrecision = 2
	minPrecision     = 1
	maxPrecision     = 4
)

type statisticsService struct {
	repo   StatisticsRepository
	cache  *cache.Cache
	logger *logrus.Logger
	now    func() time.Time
}

func NewStatisticsService(repo StatisticsRepository, logger *logrus.Logger) StatisticsService {
	return &statisticsService{
		repo:   repo,
		cache:  cache.New(breakdownCacheTTL, 2*breakdownCacheTTL),
		logger: logger,
		now:    time.Now,
	}
}

func (s *statisticsService) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	stats, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.WithField("method", "GetStatistics").WithError(err).Error("Failed to get statistics")
		return nil, fmt.Errorf("service: could not get statistics: %w", err)
	}
	return stats, nil
}

// RefreshStatistics пересчитывает сводку и сбрасывает кеш разбивок
func (s *statisticsService) RefreshStatistics(ctx context.Context) error {
	stats, err := s.repo.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("service: could not refresh statistics: %w", err)
	}
	s.cache.Flush()

	s.logger.WithFields(logrus.Fields{
		"total":    stats.Total,
		"pending":  stats.Pending,
		"resolved": stats.Resolved,
	}).Debug("Statistics refreshed")
	return nil
}

// ByCategory сводит счетчики по типам в категории справочника.
// Категории без инцидентов возвращаются с нулями.
func (s *statisticsService) ByCategory(ctx context.Context) ([]models.CategoryStat, error) {
	const key = "category"
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.CategoryStat), nil
	}

	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		s.logger.WithField("method", "ByCategory").WithError(err).Error("Failed to count incidents by type")
		return nil, fmt.Errorf("service: could not get category statistics: %w", err)
	}

	categories := catalog.Categories()
	index := make(map[string]int, len(categories))
	result := make([]models.CategoryStat, len(categories))
	for i, c := range categories {
		index[c] = i
		result[i] = models.CategoryStat{Category: c}
	}
	for _, tc := range counts {
		i := index[catalog.Resolve(tc.TypeID).Category]
		result[i].Total += tc.Total
		result[i].Resolved += tc.Resolved
	}

	s.cache.SetDefault(key, result)
	return result, nil
}

// Monthly возвращает помесячную статистику за months месяцев, включая пустые месяцы
func (s *statisticsService) Monthly(ctx context.Context, months int) ([]models.MonthlyStat, error) {
	if months == 0 {
		months = defaultMonths
	}
	if months < 1 || months > maxMonths {
		return nil, fmt.Errorf("service: months must be between 1 and %d: %w", maxMonths, ErrValidation)
	}

	key := fmt.Sprintf("monthly:%d", months)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.MonthlyStat), nil
	}

	rows, err := s.repo.Monthly(ctx, months)
	if err != nil {
		s.logger.WithField("method", "Monthly").WithError(err).Error("Failed to get monthly statistics")
		return nil, fmt.Errorf("service: could not get monthly statistics: %w", err)
	}
	byMonth := make(map[string]models.MonthlyStat, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}

	// месяцы считаются в UTC, как и в выборке из базы
	now := s.now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	result := make([]models.MonthlyStat, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0).Format("2006-01")
		stat, ok := byMonth[month]
		if !ok {
			stat = models.MonthlyStat{Month: month}
		}
		result = append(result, stat)
	}

	s.cache.SetDefault(key, result)
	return result, nil
}

// Location возвращает ячейки тепловой карты с интенсивностью 0..1
func (s *statisticsService) Location(ctx context.Context, precision int) ([]models.LocationCell, error) {
	if precision == 0 {
		precision = defaultPrecision
	}
	if precision < minPrecision || precision > maxPrecision {
		return nil, fmt.Errorf("service: precision must be between %d and %d: %w", minPrecision, maxPrecision, ErrValidation)
	}

	key := fmt.Sprintf("location:%d", precision)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.LocationCell), nil
	}

	cells, err := s.repo.LocationGrid(ctx, precision)
	if err != nil {
		s.logger.WithField("method", "Location").WithError(err).Error("Failed to get location statistics")
		return nil, fmt.Errorf("service: could not get location statistics: %w", err)
	}

	maxCount := 0
	for _, c := range cells {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	for i := range cells {
		if maxCount > 0 {
			cells[i].Intensity = float64(cells[i].Count) / float64(maxCount)
		}
	}

	s.cache.SetDefault(key, cells)
	return cells, nil
}
