package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "atomic-scheduler/internal/ai/delivery/http"
	aiUC "atomic-scheduler/internal/ai/usecase"
	categoryHTTP "atomic-scheduler/internal/category/delivery/http"
	categoryRepo "atomic-scheduler/internal/category/repository/postgre"
	categoryUC "atomic-scheduler/internal/category/usecase"
	"atomic-scheduler/internal/middleware"
	scheduleHTTP "atomic-scheduler/internal/schedule/delivery/http"
	scheduleUC "atomic-scheduler/internal/schedule/usecase"
	taskHTTP "atomic-scheduler/internal/task/delivery/http"
	taskRepo "atomic-scheduler/internal/task/repository/postgre"
	taskUC "atomic-scheduler/internal/task/usecase"
)

// setupDomains wires repositories, use cases, and HTTP handlers. The
// domains share repositories: tasks and categories reference each other,
// and the schedule converter writes through both.
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	tasks := taskRepo.New(srv.postgresDB, srv.l)
	categories := categoryRepo.New(srv.postgresDB, srv.l)

	// 2. UseCases
	catUC := categoryUC.New(categories, tasks, srv.l)
	tUC := taskUC.New(tasks, catUC, srv.l)

	var exporter scheduleUC.CalendarExporter
	if srv.calendar != nil {
		exporter = srv.calendar
	}
	sUC := scheduleUC.New(tasks, catUC, exporter, srv.cfg.GoogleCalendar, srv.cfg.Schedule, srv.l)

	aUC := aiUC.New(srv.llm, srv.cfg.Perplexity.Model, srv.l)

	// 3. HTTP handlers + routes
	aiPerMinute := srv.cfg.Perplexity.RateLimitPerMin

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), mw)
	categoryHTTP.RegisterRoutes(api, categoryHTTP.New(srv.l, catUC), mw)
	scheduleHTTP.RegisterRoutes(api, scheduleHTTP.New(srv.l, sUC, aUC), mw, aiPerMinute)
	aiHTTP.RegisterRoutes(api, aiHTTP.New(srv.l, aUC), mw, aiPerMinute)

	srv.l.Infof(ctx, "Domains registered: tasks, categories, schedule, ai (llm=%t, calendar=%t)",
		srv.llm != nil, srv.calendar != nil)
	return nil
}
