package dispatching_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despachos-api/internal/application/dispatching"
	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
	"github.com/jhoicas/Despachos-api/internal/domain/numbering"
)

func TestCreateDispatch_QuedaPendingConNumeroValido(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))

	d, err := env.createDispatch(context.Background(), 500)

	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStatusPending, d.Status)
	assert.Equal(t, 0, d.RotationSeq)
	assert.True(t, numbering.IsDispatchNumber(d.DispatchNumber))
	assert.Nil(t, d.CompletedAt)
}

func TestCreateDispatch_SinStockSuficiente_Conflicto(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(499))

	_, err := env.createDispatch(context.Background(), 500)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, env.dispatches.dispatches, "no debe quedar despacho a medias")
}

func TestCreateDispatch_VerificacionNoEsReserva(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(500))
	ctx := context.Background()

	// Dos despachos de 500 contra un saldo de 500: ambos pasan porque la
	// verificación lee el saldo, no lo reserva.
	_, err := env.createDispatch(ctx, 500)
	require.NoError(t, err)
	_, err = env.createDispatch(ctx, 500)
	require.NoError(t, err)
}

func TestCreateDispatch_CantidadNoPositiva(t *testing.T) {
	env := newTestEnv()

	_, err := env.createDispatch(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = env.createDispatch(context.Background(), -10)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateDispatch_OrigenIgualDestino(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))

	_, err := env.dispatchUC.CreateDispatch(context.Background(), dispatching.CreateDispatchInput{
		ManagerID:              testManagerID,
		ClientID:               testClientID,
		ProductID:              testProductID,
		SourceWarehouseID:      testSourceWH,
		DestinationWarehouseID: testSourceWH,
		TotalQuantity:          decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDispatch_ReintentaAnteColisionDeNumero(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))
	env.dispatches.failCreates = 2 // dos colisiones antes de insertar

	d, err := env.createDispatch(context.Background(), 100)

	require.NoError(t, err, "dos colisiones caben dentro del presupuesto de reintentos")
	assert.NotNil(t, d)
}

func TestCreateDispatch_AgotaReintentos(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))
	env.dispatches.failCreates = 10 // más colisiones que reintentos

	_, err := env.createDispatch(context.Background(), 100)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCancelDispatch_SoloActivos(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))
	ctx := context.Background()

	d, err := env.createDispatch(ctx, 100)
	require.NoError(t, err)

	require.NoError(t, env.dispatchUC.CancelDispatch(ctx, testManagerID, entity.RoleManager, d.ID))

	got, err := env.dispatchUC.ListDispatches(ctx, testManagerID, entity.DispatchStatusCancelled, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Cancelar dos veces no es transición válida.
	err = env.dispatchUC.CancelDispatch(ctx, testManagerID, entity.RoleManager, d.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelDispatch_DeOtroManager_Forbidden(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))
	ctx := context.Background()

	d, err := env.createDispatch(ctx, 100)
	require.NoError(t, err)

	err = env.dispatchUC.CancelDispatch(ctx, testOtherMgrID, entity.RoleManager, d.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El admin sí puede operar sobre despachos ajenos.
	require.NoError(t, env.dispatchUC.CancelDispatch(ctx, "admin-1", entity.RoleAdmin, d.ID))
}

func TestDeleteDispatch_SoloAdminYSoloCancelados(t *testing.T) {
	env := newTestEnv()
	env.balances.set(testClientID, testProductID, testSourceWH, decimal.NewFromInt(1000))
	ctx := context.Background()

	d, err := env.createDispatch(ctx, 100)
	require.NoError(t, err)

	// Manager no borra, ni siquiera el creador.
	err = env.dispatchUC.DeleteDispatch(ctx, entity.RoleManager, d.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin tampoco borra un despacho activo.
	err = env.dispatchUC.DeleteDispatch(ctx, entity.RoleAdmin, d.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, env.dispatchUC.CancelDispatch(ctx, testManagerID, entity.RoleManager, d.ID))
	require.NoError(t, env.dispatchUC.DeleteDispatch(ctx, entity.RoleAdmin, d.ID))

	got, _, err := env.dispatchUC.GetDispatch(ctx, "admin-1", entity.RoleAdmin, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}
