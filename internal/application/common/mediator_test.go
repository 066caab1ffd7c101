package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/pi-planner/internal/application/common"
)

type pingRequest struct {
	Message string
}

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query := request.(*pingRequest)
	return "pong: " + query.Message, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	response, err := med.Send(context.Background(), &pingRequest{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "pong: hello", response)
}

func TestMediator_SendUnregisteredType(t *testing.T) {
	med := common.NewMediator()

	_, err := med.Send(context.Background(), &pingRequest{})

	assert.Error(t, err)
}

func TestMediator_SendNilRequest(t *testing.T) {
	med := common.NewMediator()

	_, err := med.Send(context.Background(), nil)

	assert.Error(t, err)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	err := common.RegisterHandler[*pingRequest](med, &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_MiddlewareRunsInOrder(t *testing.T) {
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	var trace []string
	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		trace = append(trace, "first-before")
		response, err := next(ctx, request)
		trace = append(trace, "first-after")
		return response, err
	})
	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		trace = append(trace, "second-before")
		response, err := next(ctx, request)
		trace = append(trace, "second-after")
		return response, err
	})

	response, err := med.Send(context.Background(), &pingRequest{Message: "x"})

	require.NoError(t, err)
	assert.Equal(t, "pong: x", response)
	assert.Equal(t,
		[]string{"first-before", "second-before", "second-after", "first-after"},
		trace)
}
