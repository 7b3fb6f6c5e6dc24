// Package catalog содержит статический справочник типов инцидентов.
package catalog

import (
	"sort"

	"github.com/shenikar/ciudad_activa/internal/models"
)

const (
	CategoryInfrastructure = "infrastructure"
	CategorySanitation     = "sanitation"
	CategoryServices       = "services"
	CategoryEnvironment    = "environment"
	CategorySafety         = "safety"
	CategoryOther          = "other"
)

var types = []models.IncidentType{
	{ID: "pothole", Name: "Bache", Icon: "🕳️", Color: "#e74c3c", Category: CategoryInfrastructure},
	{ID: "sidewalk", Name: "Acera dañada", Icon: "🚧", Color: "#e67e22", Category: CategoryInfrastructure},
	{ID: "traffic_light", Name: "Semáforo averiado", Icon: "🚦", Color: "#f1c40f", Category: CategoryInfrastructure},
	{ID: "waste", Name: "Basura acumulada", Icon: "🗑️", Color: "#27ae60", Category: CategorySanitation},
	{ID: "sewer", Name: "Alcantarilla obstruida", Icon: "🌊", Color: "#16a085", Category: CategorySanitation},
	{ID: "lighting", Name: "Alumbrado público", Icon: "💡", Color: "#f39c12", Category: CategoryServices},
	{ID: "water_leak", Name: "Fuga de agua", Icon: "💧", Color: "#3498db", Category: CategoryServices},
	{ID: "fallen_tree", Name: "Árbol caído", Icon: "🌳", Color: "#2ecc71", Category: CategoryEnvironment},
	{ID: "noise", Name: "Ruido excesivo", Icon: "🔊", Color: "#9b59b6", Category: CategoryEnvironment},
	{ID: "graffiti", Name: "Grafiti / vandalismo", Icon: "🎨", Color: "#8e44ad", Category: CategorySafety},
	{ID: "abandoned_vehicle", Name: "Vehículo abandonado", Icon: "🚗", Color: "#7f8c8d", Category: CategorySafety},
	{ID: "other", Name: "Otro", Icon: "📍", Color: "#95a5a6", Category: CategoryOther},
}

var byID = func() map[string]models.IncidentType {
	m := make(map[string]models.IncidentType, len(types))
	for _, t := range types {
		m[t.ID] = t
	}
	return m
}()

// Lookup возвращает тип по идентификатору
func Lookup(id string) (models.IncidentType, bool) {
	t, ok := byID[id]
	return t, ok
}

// All возвращает копию справочника в фиксированном порядке
func All() []models.IncidentType {
	out := make([]models.IncidentType, len(types))
	copy(out, types)
	return out
}

// Categories возвращает отсортированный список категорий без повторов
func Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range types {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out
}

// TypeIDsByCategory возвращает идентификаторы типов, относящихся к категории
func TypeIDsByCategory(category string) []string {
	ids := make([]string, 0)
	for _, t := range types {
		if t.Category == category {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Resolve возвращает тип по идентификатору; неизвестные идентификаторы
// (например, удаленные из справочника) отображаются как "other" с исходным ID.
func Resolve(id string) models.IncidentType {
	if t, ok := byID[id]; ok {
		return t
	}
	fallback := byID["other"]
	fallback.ID = id
	return fallback
}
