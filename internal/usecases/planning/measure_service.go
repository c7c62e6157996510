package planning

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/pkg/utils"
)

// MeasureManager gerencia as Medidas de Direção de uma meta.
type MeasureManager interface {
	AddMeasures(ctx context.Context, owner, goalStatement, lines string, frequency domain.Frequency) ([]domain.Measure, error)
	EditMeasure(ctx context.Context, measureID, description string, frequency domain.Frequency) (*domain.Measure, error)
	DeleteMeasure(ctx context.Context, measureID string) error
	MeasuresOf(ctx context.Context, owner, goalStatement string) ([]domain.Measure, error)
}

type MeasureService struct {
	measureRepo repository.MeasureRepository
	goalRepo    repository.GoalRepository
}

func NewMeasureService(
	measureRepo repository.MeasureRepository,
	goalRepo repository.GoalRepository,
) MeasureManager {
	return &MeasureService{
		measureRepo: measureRepo,
		goalRepo:    goalRepo,
	}
}

// AddMeasures cadastra uma medida por linha não vazia do texto recebido,
// todas com a mesma frequência. Linhas em branco são descartadas e
// duplicatas contra medidas existentes são permitidas.
func (s *MeasureService) AddMeasures(ctx context.Context, owner, goalStatement, lines string, frequency domain.Frequency) ([]domain.Measure, error) {
	if !domain.ValidFrequency(frequency) {
		return nil, ErrInvalidFrequency
	}

	goal, err := s.goalRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.Statement != goalStatement {
		return nil, &PlanError{Err: ErrGoalNotFound, Details: "meta não cadastrada para o responsável"}
	}

	var created []domain.Measure
	for _, line := range strings.Split(lines, "\n") {
		description := strings.TrimSpace(line)
		if description == "" {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewPlanError(ErrGenerateID, "SRV_001", err.Error())
		}

		created = append(created, domain.Measure{
			ID:            id,
			Owner:         owner,
			GoalStatement: goalStatement,
			Description:   description,
			Frequency:     frequency,
		})
	}

	if len(created) == 0 {
		return nil, ErrMissingRequiredData
	}

	measures, err := s.measureRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	measures = append(measures, created...)
	if err := s.measureRepo.ReplaceAll(ctx, measures); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"responsavel": owner,
		"quantidade":  len(created),
	}).Info("Medidas de direção cadastradas")

	return created, nil
}

// EditMeasure atualiza descrição e frequência de uma medida existente.
func (s *MeasureService) EditMeasure(ctx context.Context, measureID, description string, frequency domain.Frequency) (*domain.Measure, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrMissingRequiredData
	}
	if !domain.ValidFrequency(frequency) {
		return nil, ErrInvalidFrequency
	}

	measures, err := s.measureRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.Measure
	for i := range measures {
		if measures[i].ID == measureID {
			measures[i].Description = description
			measures[i].Frequency = frequency
			updated = &measures[i]
			break
		}
	}

	if updated == nil {
		return nil, ErrMeasureNotFound
	}

	if err := s.measureRepo.ReplaceAll(ctx, measures); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *MeasureService) DeleteMeasure(ctx context.Context, measureID string) error {
	measures, err := s.measureRepo.List(ctx)
	if err != nil {
		return err
	}

	found := false
	kept := measures[:0]
	for _, measure := range measures {
		if measure.ID == measureID {
			found = true
			continue
		}
		kept = append(kept, measure)
	}

	if !found {
		return ErrMeasureNotFound
	}

	return s.measureRepo.ReplaceAll(ctx, kept)
}

func (s *MeasureService) MeasuresOf(ctx context.Context, owner, goalStatement string) ([]domain.Measure, error) {
	return s.measureRepo.ListByGoal(ctx, owner, goalStatement)
}
