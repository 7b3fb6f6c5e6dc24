package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
)

type StatisticsRepository struct {
	db *pgxpool.Pool
}

func NewStatisticsRepository(db *pgxpool.Pool) service.StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Refresh пересчитывает сводную строку по таблицам incidents и emergencies
func (r *StatisticsRepository) Refresh(ctx context.Context) (*models.Statistics, error) {
	query := `
		INSERT INTO statistics (id, total, pending, in_progress, resolved, rejected,
			emergencies_total, emergencies_active, updated_at)
		SELECT
			1,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'resolved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			(SELECT COUNT(*) FROM emergencies),
			(SELECT COUNT(*) FROM emergencies WHERE status IN ('pending', 'in_progress')),
			NOW()
		FROM incidents
		ON CONFLICT (id) DO UPDATE SET
			total = EXCLUDED.total,
			pending = EXCLUDED.pending,
			in_progress = EXCLUDED.in_progress,
			resolved = EXCLUDED.resolved,
			rejected = EXCLUDED.rejected,
			emergencies_total = EXCLUDED.emergencies_total,
			emergencies_active = EXCLUDED.emergencies_active,
			updated_at = EXCLUDED.updated_at
		RETURNING total, pending, in_progress, resolved, rejected, emergencies_total, emergencies_active, updated_at;
	`
	stats, err := scanStatistics(r.db.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("failed to refresh statistics: %w", err)
	}
	return stats, nil
}

// Get возвращает сохраненную сводку; до первого пересчета - нули
func (r *StatisticsRepository) Get(ctx context.Context) (*models.Statistics, error) {
	query := `
		SELECT total, pending, in_progress, resolved, rejected, emergencies_total, emergencies_active, updated_at
		FROM statistics
		WHERE id = 1;
	`
	stats, err := scanStatistics(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.Statistics{}, nil
		}
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return stats, nil
}

// CountByType группирует инциденты по типу
func (r *StatisticsRepository) CountByType(ctx context.Context) ([]models.TypeCount, error) {
	query := `
		SELECT type_id, COUNT(*), COUNT(*) FILTER (WHERE status = 'resolved')
		FROM incidents
		GROUP BY type_id
		ORDER BY type_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by type: %w", err)
	}
	defer rows.Close()

	counts := make([]models.TypeCount, 0)
	for rows.Next() {
		var tc models.TypeCount
		if err := rows.Scan(&tc.TypeID, &tc.Total, &tc.Resolved); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in CountByType: %w", err)
	}
	return counts, nil
}

// Monthly возвращает созданные/решенные инциденты по месяцам (UTC) за последние months месяцев.
// Месяцы без инцидентов в выборку не попадают.
func (r *StatisticsRepository) Monthly(ctx context.Context, months int) ([]models.MonthlyStat, error) {
	query := `
		SELECT
			to_char(date_trunc('month', reported_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'resolved')
		FROM incidents
		WHERE reported_at AT TIME ZONE 'UTC' >= date_trunc('month', NOW() AT TIME ZONE 'UTC') - (($1::int - 1) * INTERVAL '1 month')
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly statistics: %w", err)
	}
	defer rows.Close()

	stats := make([]models.MonthlyStat, 0)
	for rows.Next() {
		var m models.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Created, &m.Resolved); err != nil {
			return nil, fmt.Errorf("failed to scan monthly stat: %w", err)
		}
		stats = append(stats, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in Monthly: %w", err)
	}
	return stats, nil
}

// LocationGrid группирует инциденты по ячейкам сетки с точностью precision знаков
func (r *StatisticsRepository) LocationGrid(ctx context.Context, precision int) ([]models.LocationCell, error) {
	query := `
		SELECT
			ROUND(ST_Y(location::geometry)::numeric, $1)::float8 AS lat,
			ROUND(ST_X(location::geometry)::numeric, $1)::float8 AS lng,
			COUNT(*)
		FROM incidents
		GROUP BY 1, 2
		ORDER BY 3 DESC;
	`
	rows, err := r.db.Query(ctx, query, precision)
	if err != nil {
		return nil, fmt.Errorf("failed to get location statistics: %w", err)
	}
	defer rows.Close()

	cells := make([]models.LocationCell, 0)
	for rows.Next() {
		var c models.LocationCell
		if err := rows.Scan(&c.Latitude, &c.Longitude, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan location cell: %w", err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in LocationGrid: %w", err)
	}
	return cells, nil
}

func scanStatistics(row pgx.Row) (*models.Statistics, error) {
	s := &models.Statistics{}
	err := row.Scan(&s.Total, &s.Pending, &s.InProgress, &s.Resolved, &s.Rejected,
		&s.EmergenciesTotal, &s.EmergenciesActive, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
