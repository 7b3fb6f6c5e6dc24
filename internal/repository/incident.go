package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ciudad_activa/internal/catalog"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
)

const incidentColumns = `
			id,
			type_id,
			title,
			description,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			address,
			status,
			priority,
			reported_by,
			reported_at,
			updated_at,
			votes,
			views,
			photos,
			tags`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type_id, title, description, location, address, status, priority, reported_by, photos, tags)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9, $10, $11)
		RETURNING id, reported_at, updated_at, votes, views;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type.ID,
		incident.Title,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.Address,
		incident.Status,
		incident.Priority,
		incident.ReportedBy,
		nonNil(incident.Photos),
		nonNil(incident.Tags),
	).Scan(&incident.ID, &incident.ReportedAt, &incident.UpdatedAt, &incident.Votes, &incident.Views)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты по фильтру, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	var (
		conditions []string
		args       []any
	)
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		conditions = append(conditions, "status = "+addArg(filter.Status))
	}
	if filter.Priority != "" {
		conditions = append(conditions, "priority = "+addArg(filter.Priority))
	}
	if len(filter.TypeIDs) > 0 {
		conditions = append(conditions, "type_id = ANY("+addArg(filter.TypeIDs)+")")
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(incidentColumns)
	sb.WriteString("\n\t\tFROM incidents")
	if len(conditions) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString("\n\t\tORDER BY reported_at DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + addArg(filter.Limit))
		if filter.Offset > 0 {
			sb.WriteString(" OFFSET " + addArg(filter.Offset))
		}
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows, "ListIncidents")
}

// UpdateStatus меняет статус инцидента и возвращает updated_at из базы
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (time.Time, error) {
	query := `
		UPDATE incidents SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at;
	`
	var updatedAt time.Time
	if err := r.db.QueryRow(ctx, query, status, id).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, fmt.Errorf("incident with id %s for status update: %w", id, models.ErrNotFound)
		}
		return time.Time{}, fmt.Errorf("failed to update incident status: %w", err)
	}
	return updatedAt, nil
}

// Delete удаляет инцидент
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// IncrementViews увеличивает счетчик просмотров и возвращает новое значение
func (r *IncidentRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.QueryRow(ctx, `UPDATE incidents SET views = views + 1 WHERE id = $1 RETURNING views;`, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to increment incident views: %w", err)
	}
	return views, nil
}

// Vote изменяет число голосов на delta, не опускаясь ниже нуля
func (r *IncidentRepository) Vote(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var votes int
	err := r.db.QueryRow(ctx, `UPDATE incidents SET votes = GREATEST(votes + $1, 0) WHERE id = $2 RETURNING votes;`, delta, id).Scan(&votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("incident with id %s for vote: %w", id, models.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to vote for incident: %w", err)
	}
	return votes, nil
}

// FindNearby находит нерешенные инциденты в радиусе radiusMeters от точки
func (r *IncidentRepository) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE
			status IN ('pending', 'in_progress')
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY location <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography;
		`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents by location: %w", err)
	}
	return collectIncidents(rows, "FindNearby")
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var typeID string
	err := row.Scan(
		&incident.ID,
		&typeID,
		&incident.Title,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Address,
		&incident.Status,
		&incident.Priority,
		&incident.ReportedBy,
		&incident.ReportedAt,
		&incident.UpdatedAt,
		&incident.Votes,
		&incident.Views,
		&incident.Photos,
		&incident.Tags,
	)
	if err != nil {
		return nil, err
	}
	incident.Type = catalog.Resolve(typeID)
	return incident, nil
}

func collectIncidents(rows pgx.Rows, method string) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in %s: %w", method, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return incidents, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
