// Package controllers holds the gin handlers. Dependencies are injected once
// at router setup via Init.
package controllers

import (
	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/services"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

var (
	data     *store.Dataset
	notifier *services.NotificationService
	logger   *zap.SugaredLogger
)

func Init(ds *store.Dataset, svc *services.NotificationService, log *zap.SugaredLogger) {
	data = ds
	notifier = svc
	logger = log
}
