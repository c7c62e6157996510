package planning

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/metas4dx/metas-4dx-api/infrastructure/repository"
	"github.com/metas4dx/metas-4dx-api/internal/domain"
	"github.com/metas4dx/metas-4dx-api/pkg/utils"
)

// GoalInput são os campos de uma Meta Crucial vindos do formulário.
type GoalInput struct {
	Team        string `json:"equipe"`
	Owner       string `json:"responsavel"`
	Statement   string `json:"meta_crucial"`
	Deadline    string `json:"prazo"`
	Indicator   string `json:"indicador"`
	TargetValue string `json:"meta_final"`
}

// GoalUpdate são os campos editáveis de uma meta existente.
type GoalUpdate struct {
	Statement   string `json:"meta_crucial"`
	Deadline    string `json:"prazo"`
	Indicator   string `json:"indicador"`
	TargetValue string `json:"meta_final"`
}

// GoalManager gerencia o ciclo de vida das Metas Cruciais: a invariante de
// uma meta por responsável e as cascatas de renomeação e exclusão sobre
// medidas e semanas.
type GoalManager interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GoalOf(ctx context.Context, owner string) (*domain.Goal, error)
	GoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	UpsertGoal(ctx context.Context, input GoalInput) (*domain.Goal, error)
	EditGoal(ctx context.Context, goalID string, update GoalUpdate) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
}

type GoalService struct {
	goalRepo    repository.GoalRepository
	measureRepo repository.MeasureRepository
	weeklyRepo  repository.WeeklyRepository
}

func NewGoalService(
	goalRepo repository.GoalRepository,
	measureRepo repository.MeasureRepository,
	weeklyRepo repository.WeeklyRepository,
) GoalManager {
	return &GoalService{
		goalRepo:    goalRepo,
		measureRepo: measureRepo,
		weeklyRepo:  weeklyRepo,
	}
}

func (s *GoalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.goalRepo.List(ctx)
}

func (s *GoalService) GoalOf(ctx context.Context, owner string) (*domain.Goal, error) {
	return s.goalRepo.GetByOwner(ctx, owner)
}

func (s *GoalService) GoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, &PlanError{Err: ErrGoalNotFound, GoalID: goalID}
	}
	return goal, nil
}

// UpsertGoal salva a meta do responsável, substituindo qualquer meta
// anterior dele. Ao final existe exatamente uma meta para o responsável.
// Se o texto da meta mudou, a renomeação cascateia para as medidas e
// semanas que referenciam o texto antigo.
func (s *GoalService) UpsertGoal(ctx context.Context, input GoalInput) (*domain.Goal, error) {
	input.Owner = strings.TrimSpace(input.Owner)
	input.Statement = strings.TrimSpace(input.Statement)

	if input.Owner == "" || input.Statement == "" {
		return nil, ErrMissingRequiredData
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	goal := domain.Goal{
		Team:        input.Team,
		Owner:       input.Owner,
		Statement:   input.Statement,
		Deadline:    input.Deadline,
		Indicator:   input.Indicator,
		TargetValue: input.TargetValue,
	}

	var oldStatement string
	kept := goals[:0]
	for _, existing := range goals {
		if existing.Owner == input.Owner {
			// Substituição preserva o id da meta anterior
			goal.ID = existing.ID
			oldStatement = existing.Statement
			continue
		}
		kept = append(kept, existing)
	}

	if goal.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewPlanError(ErrGenerateID, "SRV_001", err.Error())
		}
		goal.ID = id
	}

	kept = append(kept, goal)
	if err := s.goalRepo.ReplaceAll(ctx, kept); err != nil {
		return nil, err
	}

	if oldStatement != "" && oldStatement != goal.Statement {
		if err := s.cascadeRename(ctx, goal.Owner, oldStatement, goal.Statement); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"goal_id":     goal.ID,
		"responsavel": goal.Owner,
	}).Info("Meta crucial salva")

	return &goal, nil
}

// EditGoal atualiza uma meta existente pelo id. Renomear o texto da meta
// cascateia para as medidas e semanas vinculadas.
func (s *GoalService) EditGoal(ctx context.Context, goalID string, update GoalUpdate) (*domain.Goal, error) {
	update.Statement = strings.TrimSpace(update.Statement)
	if update.Statement == "" {
		return nil, ErrMissingRequiredData
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.Goal
	var oldStatement string
	for i := range goals {
		if goals[i].ID == goalID {
			oldStatement = goals[i].Statement
			goals[i].Statement = update.Statement
			goals[i].Deadline = update.Deadline
			goals[i].Indicator = update.Indicator
			goals[i].TargetValue = update.TargetValue
			updated = &goals[i]
			break
		}
	}

	if updated == nil {
		return nil, &PlanError{Err: ErrGoalNotFound, GoalID: goalID}
	}

	if err := s.goalRepo.ReplaceAll(ctx, goals); err != nil {
		return nil, err
	}

	if oldStatement != updated.Statement {
		if err := s.cascadeRename(ctx, updated.Owner, oldStatement, updated.Statement); err != nil {
			return nil, err
		}
	}

	logrus.WithField("goal_id", goalID).Info("Meta crucial atualizada")
	return updated, nil
}

// DeleteGoal remove a meta e tudo que depende dela: as medidas e também os
// registros semanais vinculados, para não deixar referências órfãs.
func (s *GoalService) DeleteGoal(ctx context.Context, goalID string) error {
	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return err
	}

	var deleted *domain.Goal
	kept := goals[:0]
	for _, goal := range goals {
		if goal.ID == goalID {
			removed := goal
			deleted = &removed
			continue
		}
		kept = append(kept, goal)
	}

	if deleted == nil {
		return &PlanError{Err: ErrGoalNotFound, GoalID: goalID}
	}

	if err := s.goalRepo.ReplaceAll(ctx, kept); err != nil {
		return err
	}

	measures, err := s.measureRepo.List(ctx)
	if err != nil {
		return err
	}

	keptMeasures := measures[:0]
	for _, measure := range measures {
		if measure.Owner == deleted.Owner && measure.GoalStatement == deleted.Statement {
			continue
		}
		keptMeasures = append(keptMeasures, measure)
	}

	if err := s.measureRepo.ReplaceAll(ctx, keptMeasures); err != nil {
		return err
	}

	entries, err := s.weeklyRepo.List(ctx)
	if err != nil {
		return err
	}

	keptEntries := entries[:0]
	for _, entry := range entries {
		if entry.Owner == deleted.Owner && entry.GoalStatement == deleted.Statement {
			continue
		}
		keptEntries = append(keptEntries, entry)
	}

	if err := s.weeklyRepo.ReplaceAll(ctx, keptEntries); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"goal_id":     goalID,
		"responsavel": deleted.Owner,
	}).Info("Meta crucial removida com medidas e semanas")

	return nil
}

// cascadeRename reescreve o texto da meta nas medidas e semanas do
// responsável. Cada coleção é gravada de forma independente.
func (s *GoalService) cascadeRename(ctx context.Context, owner, oldStatement, newStatement string) error {
	measures, err := s.measureRepo.List(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range measures {
		if measures[i].Owner == owner && measures[i].GoalStatement == oldStatement {
			measures[i].GoalStatement = newStatement
			changed = true
		}
	}

	if changed {
		if err := s.measureRepo.ReplaceAll(ctx, measures); err != nil {
			return err
		}
	}

	entries, err := s.weeklyRepo.List(ctx)
	if err != nil {
		return err
	}

	changed = false
	for i := range entries {
		if entries[i].Owner == owner && entries[i].GoalStatement == oldStatement {
			entries[i].GoalStatement = newStatement
			changed = true
		}
	}

	if changed {
		if err := s.weeklyRepo.ReplaceAll(ctx, entries); err != nil {
			return err
		}
	}

	return nil
}
