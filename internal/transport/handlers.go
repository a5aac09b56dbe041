package transport

import (
	"github.com/ds124wfegd/ezgif-api/internal/service"
)

type StatusHandler struct {
	service service.StatusService
}

func NewStatusHandler(service service.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

type ConvertHandler struct {
	service service.ConvertService
}

func NewConvertHandler(service service.ConvertService) *ConvertHandler {
	return &ConvertHandler{service: service}
}
