package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_StoresServices(t *testing.T) {
	services := &service.Services{}

	h := NewHandler(services, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_WithRequestTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop(), WithRequestTimeout(3*time.Second))

	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestHandler_Init_RegistersRoutes(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	router := h.Init()

	registered := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	assert.ElementsMatch(t, []string{"GET"}, registered["/"])
	assert.ElementsMatch(t, []string{"GET"}, registered["/health"])
	assert.ElementsMatch(t, []string{"GET"}, registered["/version"])
	assert.ElementsMatch(t, []string{"POST"}, registered["/auth/register"])
	assert.ElementsMatch(t, []string{"POST"}, registered["/auth/login"])
	assert.ElementsMatch(t, []string{"GET"}, registered["/auth/me"])
}
