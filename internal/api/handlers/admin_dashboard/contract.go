package admin_dashboard

import (
	"context"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/dashboard"
)

type DashboardService interface {
	View(ctx context.Context, caller *domain.Identity, filter dashboard.Filter) (*dashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
