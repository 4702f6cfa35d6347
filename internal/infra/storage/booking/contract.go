package booking

import (
	"time"

	"github.com/most-gh/mddroner-booking/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Clock источник текущего времени (подменяется в тестах)
type Clock func() time.Time
