package order_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/order"
)

// ──────────────────────────────────────────────────────────────────────────────
// Numeración DDMMYY-NNN
// ──────────────────────────────────────────────────────────────────────────────

var numberPattern = regexp.MustCompile(`^\d{6}-\d{3,}$`)

func TestGenerateNumber_FormatoYRelleno(t *testing.T) {
	day := time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)

	assert.Equal(t, "070326-001", order.GenerateNumber(1, day))
	assert.Equal(t, "070326-042", order.GenerateNumber(42, day))
	assert.Equal(t, "070326-999", order.GenerateNumber(999, day))
}

func TestGenerateNumber_MilOMasNoTrunca(t *testing.T) {
	day := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "311226-1000", order.GenerateNumber(1000, day))
	assert.Equal(t, "311226-12345", order.GenerateNumber(12345, day))
}

func TestGenerateNumber_PropiedadSufijo(t *testing.T) {
	day := time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)
	for n := 1; n <= 1500; n += 7 {
		got := order.GenerateNumber(n, day)
		require.Regexp(t, numberPattern, got)
		assert.Equal(t, fmt.Sprintf("%03d", n), got[7:], "sufijo de %d", n)
		assert.Equal(t, got, order.GenerateNumber(n, day), "determinista")
	}
}

func TestDayStart_UsaZonaLocal(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	// 03:00 UTC del día 8 = 21:00 del día 7 en CST
	ts := time.Date(2026, time.March, 8, 3, 0, 0, 0, time.UTC)

	start := order.DayStart(ts, loc)
	assert.Equal(t, 7, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, "070326-001", order.GenerateNumber(1, start))
}

// ──────────────────────────────────────────────────────────────────────────────
// Total del pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateTotal_VacioEsCero(t *testing.T) {
	assert.True(t, order.CalculateTotal(nil).IsZero())
	assert.True(t, order.CalculateTotal([]order.Line{}).IsZero())
}

func TestCalculateTotal_SumaExacta(t *testing.T) {
	lines := []order.Line{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("45.00")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("12.50")},
	}
	assert.Equal(t, "127.50", order.CalculateTotal(lines).StringFixed(2))
}

func TestCalculateTotal_SinDerivaBinaria(t *testing.T) {
	// 0.10 × 1 mil veces: en float64 acumula error; en decimal debe ser 100.00 exacto.
	lines := make([]order.Line, 1000)
	for i := range lines {
		lines[i] = order.Line{Quantity: 1, UnitPrice: decimal.RequireFromString("0.10")}
	}
	total := order.CalculateTotal(lines)
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "total %s", total)

	lines = []order.Line{
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("0.20")},
	}
	assert.Equal(t, "0.50", order.CalculateTotal(lines).StringFixed(2))
	assert.True(t, order.CalculateTotal(lines).Equal(order.CalculateTotal(lines).Round(2)))
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, "90.00", order.Subtotal(2, decimal.RequireFromString("45")).StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_TablaExacta(t *testing.T) {
	allowed := map[string][]string{
		entity.OrderStatusPending:       {entity.OrderStatusInPreparation, entity.OrderStatusCanceled},
		entity.OrderStatusInPreparation: {entity.OrderStatusReady, entity.OrderStatusCanceled},
		entity.OrderStatusReady:         {entity.OrderStatusDelivered, entity.OrderStatusCanceled},
	}
	for _, from := range entity.OrderStatuses {
		for _, to := range entity.OrderStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, order.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_CasosConocidos(t *testing.T) {
	assert.True(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusInPreparation))
	assert.False(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusReady))
	assert.False(t, order.CanTransition("desconocido", entity.OrderStatusReady))
	assert.False(t, order.CanTransition(entity.OrderStatusPending, "desconocido"))
}

func TestCanTransition_TerminalesYMismoEstado(t *testing.T) {
	for _, to := range entity.OrderStatuses {
		assert.False(t, order.CanTransition(entity.OrderStatusDelivered, to))
		assert.False(t, order.CanTransition(entity.OrderStatusCanceled, to))
	}
	for _, s := range entity.OrderStatuses {
		assert.False(t, order.CanTransition(s, s), "%s no debe transicionar a sí mismo", s)
	}
	assert.True(t, order.IsTerminal(entity.OrderStatusDelivered))
	assert.True(t, order.IsTerminal(entity.OrderStatusCanceled))
	assert.False(t, order.IsTerminal(entity.OrderStatusReady))
}

func TestNextStatuses_DevuelveCopia(t *testing.T) {
	next := order.NextStatuses(entity.OrderStatusPending)
	require.Len(t, next, 2)
	next[0] = entity.OrderStatusDelivered
	assert.True(t, order.CanTransition(entity.OrderStatusPending, entity.OrderStatusInPreparation))
	assert.Empty(t, order.NextStatuses(entity.OrderStatusDelivered))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero de pedidos activos
// ──────────────────────────────────────────────────────────────────────────────

func TestWaitColor_Umbrales(t *testing.T) {
	assert.Equal(t, order.WaitGreen, order.WaitColor(0))
	assert.Equal(t, order.WaitGreen, order.WaitColor(14))
	assert.Equal(t, order.WaitYellow, order.WaitColor(15))
	assert.Equal(t, order.WaitYellow, order.WaitColor(29))
	assert.Equal(t, order.WaitRed, order.WaitColor(30))
	assert.Equal(t, order.WaitRed, order.WaitColor(240))
}

func TestWaitingMinutes_TruncaYNoEsNegativo(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 16, order.WaitingMinutes(now.Add(-16*time.Minute-59*time.Second), now))
	assert.Equal(t, 0, order.WaitingMinutes(now.Add(time.Minute), now))
}
