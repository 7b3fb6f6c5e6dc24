package v1

import "github.com/shenikar/ciudad_activa/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель.
// Метаданные типа заполняет сервис по справочнику.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Type:        models.IncidentType{ID: dto.Type},
		Title:       dto.Title,
		Description: dto.Description,
		Latitude:    floatValue(dto.Latitude),
		Longitude:   floatValue(dto.Longitude),
		Address:     dto.Address,
		Priority:    dto.Priority,
		ReportedBy:  dto.ReportedBy,
		Photos:      dto.Photos,
		Tags:        dto.Tags,
	}
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func ModelToIncidentTypeResponse(t models.IncidentType) IncidentTypeResponse {
	return IncidentTypeResponse{
		ID:       t.ID,
		Name:     t.Name,
		Icon:     t.Icon,
		Color:    t.Color,
		Category: t.Category,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Type:        ModelToIncidentTypeResponse(model.Type),
		Title:       model.Title,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Address:     model.Address,
		Status:      model.Status,
		Priority:    model.Priority,
		ReportedBy:  model.ReportedBy,
		ReportedAt:  model.ReportedAt,
		UpdatedAt:   model.UpdatedAt,
		Votes:       model.Votes,
		Views:       model.Views,
		Photos:      nonNilStrings(model.Photos),
		Tags:        nonNilStrings(model.Tags),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func DTOToEmergencyModel(dto CreateEmergencyRequest) *models.Emergency {
	return &models.Emergency{
		Type:         dto.Type,
		Title:        dto.Title,
		Description:  dto.Description,
		Province:     dto.Province,
		Municipality: dto.Municipality,
		Address:      dto.Address,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Priority:     dto.Priority,
		ReportedBy:   dto.ReportedBy,
		ContactPhone: dto.ContactPhone,
	}
}

func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:           model.ID,
		Type:         model.Type,
		Title:        model.Title,
		Description:  model.Description,
		Province:     model.Province,
		Municipality: model.Municipality,
		Address:      model.Address,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Priority:     model.Priority,
		Status:       model.Status,
		ReportedBy:   model.ReportedBy,
		ContactPhone: model.ContactPhone,
		Response:     model.Response,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		ResolvedAt:   model.ResolvedAt,
	}
}

func ModelsToEmergencyResponses(models []*models.Emergency) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEmergencyResponse(model)
	}
	return responses
}

func ModelToNotificationResponse(model *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          model.ID,
		IncidentID:  model.IncidentID,
		EmergencyID: model.EmergencyID,
		Type:        model.Type,
		Title:       model.Title,
		Message:     model.Message,
		CreatedAt:   model.CreatedAt,
		ReadAt:      model.ReadAt,
		Read:        model.ReadAt != nil,
	}
}

func ModelsToNotificationResponses(models []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNotificationResponse(model)
	}
	return responses
}

// nonNilStrings отдает пустой массив вместо null
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
