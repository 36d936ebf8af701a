package service

import (
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/lib/storage"
	"github.com/deppfellow/portfolio-api/internal/repository"
	"github.com/deppfellow/portfolio-api/internal/server"
)

type Services struct {
	Auth        *AuthService
	Contact     *ContactService
	Skill       *SkillService
	Technology  *TechnologyService
	Experience  *ExperienceService
	Portfolio   *PortfolioService
	HireRequest *HireRequestService
	Upload      *UploadService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	store, err := storage.New(s.Config.Upload.Dir, s.Config.Upload.PublicPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	var notifier Notifier
	if s.Job != nil {
		notifier = s.Job
	}

	processor := NewImageProcessor(s.Config.Upload, store.Dir(), s.Logger)

	return &Services{
		Auth:        NewAuthService(s.Config.Auth),
		Contact:     NewContactService(repos.Contact),
		Skill:       NewSkillService(repos.Skill),
		Technology:  NewTechnologyService(repos.Technology),
		Experience:  NewExperienceService(repos.Experience),
		Portfolio:   NewPortfolioService(repos.Portfolio),
		HireRequest: NewHireRequestService(repos.HireRequest, notifier),
		Upload:      NewUploadService(store, processor, s.Config.Upload),
	}, nil
}
