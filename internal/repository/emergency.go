package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
)

const emergencyColumns = `
			id,
			type,
			title,
			description,
			province,
			municipality,
			address,
			COALESCE(ST_Y(location::geometry), 0) as latitude,
			COALESCE(ST_X(location::geometry), 0) as longitude,
			priority,
			status,
			reported_by,
			contact_phone,
			response,
			created_at,
			updated_at,
			resolved_at`

type EmergencyRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyRepository(db *pgxpool.Pool) service.EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create сохраняет экстренную ситуацию
func (r *EmergencyRepository) Create(ctx context.Context, e *models.Emergency) error {
	query := `
		INSERT INTO emergencies (type, title, description, province, municipality, address, location,
			priority, status, reported_by, contact_phone)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7::float8, $8::float8), 4326), $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	lon, lat := emergencyPoint(e)
	err := r.db.QueryRow(ctx, query,
		e.Type,
		e.Title,
		e.Description,
		e.Province,
		e.Municipality,
		e.Address,
		lon,
		lat,
		e.Priority,
		e.Status,
		e.ReportedBy,
		e.ContactPhone,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w", err)
	}
	return nil
}

// emergencyPoint возвращает координаты для вставки; (0, 0) означает, что точка не указана,
// и location сохраняется как NULL
func emergencyPoint(e *models.Emergency) (lon, lat *float64) {
	if e.Latitude == 0 && e.Longitude == 0 {
		return nil, nil
	}
	return &e.Longitude, &e.Latitude
}

func (r *EmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	query := `SELECT` + emergencyColumns + `
		FROM emergencies
		WHERE id = $1;
	`
	e, err := scanEmergency(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency by id: %w", err)
	}
	return e, nil
}

// List возвращает экстренные ситуации по фильтру, новые первыми
func (r *EmergencyRepository) List(ctx context.Context, filter models.EmergencyFilter) ([]*models.Emergency, error) {
	var (
		conditions []string
		args       []any
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("province", filter.Province)
	add("municipality", filter.Municipality)
	add("status", filter.Status)
	add("priority", filter.Priority)

	query := `SELECT` + emergencyColumns + `
		FROM emergencies`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n\t\tORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		e, err := scanEmergency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		emergencies = append(emergencies, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return emergencies, nil
}

// UpdateStatus сохраняет статус, ответ и время разрешения
func (r *EmergencyRepository) UpdateStatus(ctx context.Context, e *models.Emergency) error {
	query := `
		UPDATE emergencies SET
			status = $1,
			response = $2,
			resolved_at = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query, e.Status, e.Response, e.ResolvedAt, e.ID).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("emergency with id %s for status update: %w", e.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update emergency status: %w", err)
	}
	return nil
}

func scanEmergency(row pgx.Row) (*models.Emergency, error) {
	e := &models.Emergency{}
	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Title,
		&e.Description,
		&e.Province,
		&e.Municipality,
		&e.Address,
		&e.Latitude,
		&e.Longitude,
		&e.Priority,
		&e.Status,
		&e.ReportedBy,
		&e.ContactPhone,
		&e.Response,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
