package team

import (
	"context"
	"net/http"
	"strings"
	"time"

	"torneos/internal/modules/tournament"
	"torneos/internal/modules/user"
	"torneos/pkg/lib/patch"
)

// --- GORM models ---

// Team maps the 'equipos' table. The (torneo_id, LOWER(nombre)) unique index
// is the only arbiter of name uniqueness.
type Team struct {
	ID                  int64     `gorm:"primaryKey;column:id" json:"id"`
	Name                string    `gorm:"size:150;not null;column:nombre" json:"nombre"`
	Color               *string   `gorm:"size:30;column:color" json:"color"`
	Representative      *string   `gorm:"size:120;column:representante" json:"representante"`
	RepresentativePhone *string   `gorm:"size:30;column:telefono_representante" json:"telefono_representante"`
	TournamentID        int64     `gorm:"not null;column:torneo_id" json:"torneo_id"`
	CreatedAt           time.Time `gorm:"column:creado_en;autoCreateTime" json:"creado_en"`
	UpdatedAt           time.Time `gorm:"column:actualizado_en;autoUpdateTime" json:"actualizado_en"`
}

func (Team) TableName() string { return "equipos" }

// Player maps the 'jugadores' table; read-only here.
type Player struct {
	ID           int64      `gorm:"primaryKey;column:id" json:"id"`
	FirstName    string     `gorm:"column:nombre" json:"nombre"`
	LastName     string     `gorm:"column:apellido" json:"apellido"`
	BirthDate    *time.Time `gorm:"column:fecha_nacimiento" json:"fecha_nacimiento"`
	JerseyNumber *int       `gorm:"column:nro_camiseta" json:"nro_camiseta"`
	Position     *string    `gorm:"column:posicion" json:"posicion"`
	TeamID       int64      `gorm:"column:equipo_id" json:"equipo_id"`
	CreatedAt    time.Time  `gorm:"column:creado_en" json:"creado_en"`
	UpdatedAt    time.Time  `gorm:"column:actualizado_en" json:"actualizado_en"`
}

func (Player) TableName() string { return "jugadores" }

// --- Read models ---

// TeamDetail is a team joined with its tournament and player count.
// TournamentOrganizerID is only loaded by single-team lookups.
type TeamDetail struct {
	ID                    int64     `gorm:"column:id" json:"id"`
	Name                  string    `gorm:"column:nombre" json:"nombre"`
	Color                 *string   `gorm:"column:color" json:"color"`
	Representative        *string   `gorm:"column:representante" json:"representante"`
	RepresentativePhone   *string   `gorm:"column:telefono_representante" json:"telefono_representante"`
	TournamentID          int64     `gorm:"column:torneo_id" json:"torneo_id"`
	TournamentName        string    `gorm:"column:torneo_nombre" json:"torneo_nombre"`
	TournamentDiscipline  string    `gorm:"column:torneo_disciplina" json:"torneo_disciplina"`
	TournamentStatus      string    `gorm:"column:torneo_estado" json:"torneo_estado"`
	TournamentOrganizerID *uint     `gorm:"column:torneo_organizador_id" json:"torneo_organizador_id,omitempty"`
	PlayerCount           int64     `gorm:"column:total_jugadores" json:"total_jugadores"`
	CreatedAt             time.Time `gorm:"column:creado_en" json:"creado_en"`
	UpdatedAt             time.Time `gorm:"column:actualizado_en" json:"actualizado_en"`
}

type TeamSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"nombre"`
	Tournament string `json:"torneo"`
}

func (d *TeamDetail) Summary() TeamSummary {
	return TeamSummary{ID: d.ID, Name: d.Name, Tournament: d.TournamentName}
}

type TeamPlayers struct {
	Team    TeamSummary
	Players []*Player
}

// --- Request DTOs ---

type CreateTeamRequest struct {
	Name                string  `json:"nombre" validate:"required,min=2,max=150" example:"Lobos"`
	Color               *string `json:"color,omitempty" validate:"omitempty,max=30" example:"rojo"`
	Representative      *string `json:"representante,omitempty" validate:"omitempty,max=120" example:"Ana Pérez"`
	RepresentativePhone *string `json:"telefono_representante,omitempty" validate:"omitempty,phone,min=7,max=30" example:"+54 11 4444-5555"`
	TournamentID        int64   `json:"torneo_id" validate:"required,gt=0" example:"1"`
}

// Normalize trims text fields. Empty optional fields become nil.
func (r *CreateTeamRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Color = trimToNil(r.Color)
	r.Representative = trimToNil(r.Representative)
	r.RepresentativePhone = trimToNil(r.RepresentativePhone)
}

func (r *CreateTeamRequest) ToModel() *Team {
	return &Team{
		Name:                r.Name,
		Color:               r.Color,
		Representative:      r.Representative,
		RepresentativePhone: r.RepresentativePhone,
		TournamentID:        r.TournamentID,
	}
}

// UpdateTeamRequest is a partial update; absent fields keep their value.
type UpdateTeamRequest struct {
	Name                patch.Field[string] `json:"nombre" validate:"omitempty,min=2,max=150" swaggertype:"string" example:"Lobos"`
	Color               patch.Field[string] `json:"color" validate:"omitempty,max=30" swaggertype:"string" example:"azul"`
	Representative      patch.Field[string] `json:"representante" validate:"omitempty,max=120" swaggertype:"string"`
	RepresentativePhone patch.Field[string] `json:"telefono_representante" validate:"omitempty,phone,min=7,max=30" swaggertype:"string"`
}

// Normalize trims values and resolves the null rules:
// color and representante are cleared by null or blank, a null or blank
// phone leaves the stored value untouched.
func (r *UpdateTeamRequest) Normalize() {
	if r.Name.HasValue() {
		r.Name.Value = strings.TrimSpace(r.Name.Value)
	}
	for _, f := range []*patch.Field[string]{&r.Color, &r.Representative} {
		if f.HasValue() {
			f.Value = strings.TrimSpace(f.Value)
			if f.Value == "" {
				*f = patch.Null[string]()
			}
		}
	}
	if r.RepresentativePhone.HasValue() {
		r.RepresentativePhone.Value = strings.TrimSpace(r.RepresentativePhone.Value)
	}
	if !r.RepresentativePhone.HasValue() || r.RepresentativePhone.Value == "" {
		r.RepresentativePhone = patch.Field[string]{}
	}
}

// NameChange returns the requested name when it differs from current.
func (r *UpdateTeamRequest) NameChange(current string) (string, bool) {
	if !r.Name.HasValue() || r.Name.Value == current {
		return "", false
	}
	return r.Name.Value, true
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// --- Interfaces ---

type Controller interface {
	ListTeams(w http.ResponseWriter, r *http.Request)
	CreateTeam(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)
	GetTeamPlayers(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	ListTeams(ctx context.Context) ([]*TeamDetail, error)
	CreateTeam(ctx context.Context, p user.Principal, req CreateTeamRequest) (*Team, error)
	GetTeam(ctx context.Context, teamID int64) (*TeamDetail, error)
	UpdateTeam(ctx context.Context, p user.Principal, teamID int64, req UpdateTeamRequest) (*Team, error)
	DeleteTeam(ctx context.Context, p user.Principal, teamID int64) error
	GetTeamPlayers(ctx context.Context, teamID int64) (*TeamPlayers, error)
}

// Repo is the team persistence gateway. Lookups by id return ErrTeamNotFound
// when no row matches.
type Repo interface {
	ListTeams(ctx context.Context) ([]*TeamDetail, error)
	// NameExistsInTournament compares names case-insensitively. excludeID 0
	// means no team is excluded.
	NameExistsInTournament(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error)
	GetTeamByID(ctx context.Context, teamID int64) (*TeamDetail, error)
	// GetTeamByIDUncached skips any cache; mutations authorize against it.
	GetTeamByIDUncached(ctx context.Context, teamID int64) (*TeamDetail, error)
	CreateTeam(ctx context.Context, t *Team) (*Team, error)
	UpdateTeam(ctx context.Context, teamID int64, req UpdateTeamRequest) (*Team, error)
	DeleteTeam(ctx context.Context, teamID int64) (bool, error)
	GetTeamPlayers(ctx context.Context, teamID int64) ([]*Player, error)
	RefreshTeamList(ctx context.Context) (int, error)
}

type TournamentLookup = tournament.Repo
