package http

import (
	"github.com/thinhdeeptry/report-service/internal/middleware"
	"github.com/thinhdeeptry/report-service/internal/report"
	"github.com/thinhdeeptry/report-service/pkg/discord"
	"github.com/thinhdeeptry/report-service/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      report.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc report.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
