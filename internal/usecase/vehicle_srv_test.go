package usecase

import (
	"context"
	"net/http"
	"testing"

	"garagehub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVehicleLifecycle(t *testing.T) {
	repo := newFakeRepository()
	userID, _ := seedCustomer(repo)
	svc := NewVehicleService(repo, zap.NewNop())

	req := &request.CreateVehicleRequest{
		Make:        "Toyota",
		Model:       "Avanza",
		Year:        2019,
		PlateNumber: "B 1234 XYZ",
	}

	created, err := svc.CreateVehicle(context.Background(), userID, req)
	require.NoError(t, err)
	require.Equal(t, "Toyota", created.Make)

	t.Run("no customer profile", func(t *testing.T) {
		_, err := svc.CreateVehicle(context.Background(), uuid.New(), req)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("list own vehicles", func(t *testing.T) {
		vehicles, err := svc.GetMyVehicles(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		require.Equal(t, created.ID, vehicles[0].ID)
	})

	t.Run("foreign vehicle reads as missing", func(t *testing.T) {
		strangerID, _ := seedCustomer(repo)
		err := svc.DeleteVehicle(context.Background(), strangerID, created.ID)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("delete own vehicle", func(t *testing.T) {
		require.NoError(t, svc.DeleteVehicle(context.Background(), userID, created.ID))

		vehicles, err := svc.GetMyVehicles(context.Background(), userID)
		require.NoError(t, err)
		require.Empty(t, vehicles)
	})
}
