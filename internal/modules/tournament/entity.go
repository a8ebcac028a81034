package tournament

import (
	"context"
	"time"
)

// Tournament is read-only from the team subsystem's point of view.
type Tournament struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:150;not null;column:nombre" json:"nombre"`
	Discipline  string    `gorm:"size:50;not null;column:disciplina" json:"disciplina"`
	Status      string    `gorm:"size:30;not null;column:estado" json:"estado"`
	OrganizerID *uint     `gorm:"column:organizador_id" json:"organizador_id"`
	CreatedAt   time.Time `gorm:"column:creado_en" json:"creado_en"`
	UpdatedAt   time.Time `gorm:"column:actualizado_en" json:"actualizado_en"`
}

func (Tournament) TableName() string { return "torneos" }

type Repo interface {
	// GetTournamentByID returns nil, nil when no tournament has the id.
	GetTournamentByID(ctx context.Context, id int64) (*Tournament, error)
}
