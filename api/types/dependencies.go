package types

import (
	"github.com/strollcast/episode-api/internal/database"
	"github.com/strollcast/episode-api/internal/services/assembly"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	AssemblyService *assembly.Service
	StatusTracker   *assembly.StatusTracker
}
