package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/thinhdeeptry/report-service/internal/middleware"
	reportHTTP "github.com/thinhdeeptry/report-service/internal/report/delivery/http"
	reportPostgre "github.com/thinhdeeptry/report-service/internal/report/repository/postgre"
	reportRedis "github.com/thinhdeeptry/report-service/internal/report/repository/redis"
	reportUsecase "github.com/thinhdeeptry/report-service/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := reportRedis.New(srv.redisClient, srv.l)

	uc := reportUsecase.New(repo, cacheRepo, srv.statsClient, srv.kafkaProducer, srv.l, reportUsecase.Config{})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
