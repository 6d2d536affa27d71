package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despachos-api/internal/application/ledger"
	"github.com/jhoicas/Despachos-api/internal/domain"
	"github.com/jhoicas/Despachos-api/internal/domain/entity"
)

func directInput(qty decimal.Decimal) ledger.DirectMovementInput {
	return ledger.DirectMovementInput{
		ClientID:    testClientID,
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    qty,
		Reference:   "BONO-001",
		OperatorID:  testOperatorID,
	}
}

func TestGetBalance_ClaveSinMovimientos_EsCero(t *testing.T) {
	tl := newTestLedger()

	got, err := tl.uc.GetBalance(context.Background(), testClientID, testProductID, testWarehouseID)

	require.NoError(t, err)
	assert.True(t, got.IsZero(), "una clave que nunca se movió vale cero, no error")
}

func TestDirectEntry_SumaAlSaldoYRegistraMovimiento(t *testing.T) {
	tl := newTestLedger()

	id, err := tl.uc.DirectEntry(context.Background(), directInput(decimal.NewFromInt(120)))

	require.NoError(t, err)
	require.NotEmpty(t, id, "debe devolver el ID del movimiento creado")

	saldo, err := tl.uc.GetBalance(context.Background(), testClientID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(decimal.NewFromInt(120)))

	require.Len(t, tl.mov.movements, 1)
	m := tl.mov.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, m.Type)
	assert.True(t, m.Quantity.Equal(decimal.NewFromInt(120)), "la cantidad del movimiento es siempre positiva")
	assert.Equal(t, testOperatorID, m.OperatorID)
	assert.Nil(t, m.RotationID, "una entrada directa no referencia rotación")
}

func TestDirectExit_PuedeDejarSaldoNegativo(t *testing.T) {
	tl := newTestLedger()

	// Salida sin stock previo: el libro no rechaza sobre-débitos.
	_, err := tl.uc.DirectExit(context.Background(), directInput(decimal.NewFromInt(30)))
	require.NoError(t, err)

	saldo, err := tl.uc.GetBalance(context.Background(), testClientID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(decimal.NewFromInt(-30)), "el saldo negativo es política, no error")
}

func TestDirect_CantidadNoPositiva_Rechazada(t *testing.T) {
	tl := newTestLedger()

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := tl.uc.DirectEntry(context.Background(), directInput(qty))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		_, err = tl.uc.DirectExit(context.Background(), directInput(qty))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Empty(t, tl.mov.movements, "un rechazo de validación no deja rastro en el log")
}

func TestDirect_MaestroInexistente_NotFound(t *testing.T) {
	tl := newTestLedger()

	in := directInput(decimal.NewFromInt(10))
	in.ProductID = "no-existe"

	_, err := tl.uc.DirectEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tl.mov.movements)
}

// TestSaldo_EsPliegueDelLog verifica la propiedad central del libro: el saldo
// de una clave es exactamente Σ entradas − Σ salidas de su historial.
func TestSaldo_EsPliegueDelLog(t *testing.T) {
	tl := newTestLedger()
	ctx := context.Background()

	pasos := []struct {
		entrada bool
		qty     int64
	}{
		{true, 500},
		{false, 120},
		{true, 80},
		{false, 200},
		{false, 300}, // deja el saldo en -40
	}
	for _, p := range pasos {
		var err error
		if p.entrada {
			_, err = tl.uc.DirectEntry(ctx, directInput(decimal.NewFromInt(p.qty)))
		} else {
			_, err = tl.uc.DirectExit(ctx, directInput(decimal.NewFromInt(p.qty)))
		}
		require.NoError(t, err)
	}

	saldo, err := tl.uc.GetBalance(ctx, testClientID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.True(t, saldo.Equal(decimal.NewFromInt(-40)), "saldo esperado -40, got %s", saldo)

	// Re-aplicar el historial reproduce el saldo.
	movimientos, err := tl.uc.ListMovementsByKey(ctx, testClientID, testProductID, testWarehouseID)
	require.NoError(t, err)
	require.Len(t, movimientos, len(pasos))

	replay := decimal.Zero
	for _, m := range movimientos {
		require.True(t, m.Quantity.GreaterThan(decimal.Zero), "el log solo guarda cantidades positivas")
		switch m.Type {
		case entity.MovementTypeEntry:
			replay = replay.Add(m.Quantity)
		case entity.MovementTypeExit:
			replay = replay.Sub(m.Quantity)
		}
	}
	assert.True(t, replay.Equal(saldo), "el replay del log debe reproducir el saldo exacto")
}
