package postgre

import (
	"database/sql"

	"github.com/thinhdeeptry/report-service/internal/report/repository"
	"github.com/thinhdeeptry/report-service/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
