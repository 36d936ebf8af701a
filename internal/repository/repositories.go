package repository

import (
	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Contact     *ContactRepository
	Skill       *SkillRepository
	Technology  *TechnologyRepository
	Experience  *ExperienceRepository
	Portfolio   *PortfolioRepository
	HireRequest *HireRequestRepository
}

// NewRepositories builds every repository on the server's shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db, which may be a pool or a mock.
func New(db database.DBTX) *Repositories {
	return &Repositories{
		Contact:     NewContactRepository(db),
		Skill:       NewSkillRepository(db),
		Technology:  NewTechnologyRepository(db),
		Experience:  NewExperienceRepository(db),
		Portfolio:   NewPortfolioRepository(db),
		HireRequest: NewHireRequestRepository(db),
	}
}
