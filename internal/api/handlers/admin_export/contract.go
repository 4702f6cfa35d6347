package admin_export

import (
	"context"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/dashboard"
)

type DashboardService interface {
	Export(ctx context.Context, caller *domain.Identity, filter dashboard.Filter, format string) (*dashboard.Export, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
