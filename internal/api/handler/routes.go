package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/metas4dx/metas-4dx-api/internal/api/handler/router"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/planning"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/registering"
	"github.com/metas4dx/metas-4dx-api/internal/usecases/tracking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Teams(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/teams",
			Method:  http.MethodGet,
			Handler: ListTeams(service),
		},
		{
			Path:    "/v1/teams",
			Method:  http.MethodPost,
			Handler: CreateTeam(service),
		},
		{
			Path:    "/v1/teams/:name/users",
			Method:  http.MethodGet,
			Handler: ListTeamUsers(service),
		},
	}
}

func Users(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodGet,
			Handler: ListUsers(service),
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
	}
}

func Goals(service planning.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: ListGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPut,
			Handler: UpsertGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodGet,
			Handler: GetGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodPut,
			Handler: EditGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodDelete,
			Handler: DeleteGoal(service),
		},
	}
}

func Measures(service planning.MeasureManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/measures",
			Method:  http.MethodGet,
			Handler: ListMeasures(service),
		},
		{
			Path:    "/v1/measures",
			Method:  http.MethodPost,
			Handler: AddMeasures(service),
		},
		{
			Path:    "/v1/measures/:id",
			Method:  http.MethodPut,
			Handler: EditMeasure(service),
		},
		{
			Path:    "/v1/measures/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMeasure(service),
		},
	}
}

func Weekly(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/weekly/current",
			Method:  http.MethodGet,
			Handler: GetCurrentWeek(service),
		},
		{
			Path:    "/v1/weekly/previous",
			Method:  http.MethodGet,
			Handler: GetPreviousWeek(service),
		},
		{
			Path:    "/v1/weekly/commitment",
			Method:  http.MethodPost,
			Handler: RecordCommitment(service),
		},
		{
			Path:    "/v1/weekly/completion",
			Method:  http.MethodPost,
			Handler: RecordCompletion(service),
		},
		{
			Path:    "/v1/weekly/status",
			Method:  http.MethodPost,
			Handler: ConfirmWeekStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
