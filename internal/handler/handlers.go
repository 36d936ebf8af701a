package handler

import (
	"github.com/deppfellow/portfolio-api/internal/server"
	"github.com/deppfellow/portfolio-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one object.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Contact     *ContactHandler
	Skill       *SkillHandler
	Technology  *TechnologyHandler
	Experience  *ExperienceHandler
	Portfolio   *PortfolioHandler
	HireRequest *HireRequestHandler
	Upload      *UploadHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Contact:     NewContactHandler(s, services.Contact),
		Skill:       NewSkillHandler(s, services.Skill),
		Technology:  NewTechnologyHandler(s, services.Technology),
		Experience:  NewExperienceHandler(s, services.Experience),
		Portfolio:   NewPortfolioHandler(s, services.Portfolio),
		HireRequest: NewHireRequestHandler(s, services.HireRequest),
		Upload:      NewUploadHandler(s, services.Upload),
	}
}
