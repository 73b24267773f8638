package repository

import (
	"context"
	"time"

	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type CreateMemberInput struct {
	Name      string
	BirthDate time.Time
	Gender    string
	HeightCM  float64
	JoinDate  time.Time
}

type MemberRepository struct {
	db DBTX
}

func NewMemberRepository(db DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, input CreateMemberInput) (*models.Member, error) {
	query := `
		INSERT INTO miembros (nombre, fecha_nacimiento, genero, altura, fecha_ingreso)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING miembro_id, total_sesiones
	`
	member := models.Member{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Gender:    input.Gender,
		HeightCM:  input.HeightCM,
		JoinDate:  input.JoinDate,
	}
	err := r.db.QueryRow(ctx, query, input.Name, input.BirthDate, input.Gender, input.HeightCM, input.JoinDate).
		Scan(&member.ID, &member.TotalSessions)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) AddContact(ctx context.Context, memberID int64, contactType, value string) error {
	query := `
		INSERT INTO contactos_miembro (miembro_id, tipo_contacto, valor)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, memberID, contactType, value)
	return err
}

func (r *MemberRepository) GetHeight(ctx context.Context, memberID int64) (float64, error) {
	query := `SELECT altura FROM miembros WHERE miembro_id = $1`
	var height float64
	err := r.db.QueryRow(ctx, query, memberID).Scan(&height)
	return height, err
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM miembros`).Scan(&count)
	return count, err
}
