//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Cafeteria-api/internal/domain"
	"github.com/jhoicas/Cafeteria-api/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-api/internal/domain/repository"
	"github.com/jhoicas/Cafeteria-api/pkg/config"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("cafeteria_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	// idempotente
	require.NoError(t, Migrate(ctx, pool))
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID: uuid.New().String(), Email: uuid.New().String() + "@cafe.mx", PasswordHash: "x",
		Name: "Ana", Role: entity.RoleBarista, Active: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), u))
	return u
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, name, price, category string) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID: uuid.New().String(), Name: name, Price: decimal.RequireFromString(price),
		Category: category, Available: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewProductRepository(pool).Create(context.Background(), p))
	return p
}

func newOrder(userID, number string, at time.Time) *entity.Order {
	return &entity.Order{
		ID: uuid.New().String(), Number: number, Type: entity.OrderTypeMostrador,
		Status: entity.OrderStatusPending, Total: decimal.RequireFromString("90.00"),
		UserID: userID, CreatedAt: at, UpdatedAt: at,
	}
}

func TestOrderRepo_CrearLeerYNumeroUnico(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool)
	latte := seedProduct(t, pool, "Latte", "45.00", entity.CategoryHotDrink)
	repo := NewOrderRepository(pool)

	o := newOrder(user.ID, "070326-001", time.Now())
	o.CustomerName = "Luis"
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.CreateItems(ctx, []*entity.OrderItem{{
		ID: uuid.New().String(), OrderID: o.ID, ProductID: latte.ID, Quantity: 2,
		UnitPrice: latte.Price, Subtotal: decimal.RequireFromString("90.00"),
	}}))
	require.NoError(t, repo.CreateHistory(ctx, &entity.OrderHistory{
		ID: uuid.New().String(), OrderID: o.ID, NewStatus: entity.OrderStatusPending, UserID: user.ID, CreatedAt: o.CreatedAt,
	}))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "070326-001", got.Number)
	assert.Equal(t, "Luis", got.CustomerName)
	assert.Empty(t, got.Address)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("90")))

	items, err := repo.ListItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].ProductName)

	history, err := repo.ListHistory(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].PreviousStatus)
	assert.Equal(t, "Ana", history[0].UserName)

	dup := newOrder(user.ID, "070326-001", time.Now())
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrConflict)

	missing, err := repo.GetByID(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, missing)
	missing, err = repo.GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, o.ID))
	items, err = repo.ListItems(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepo_UpdateStatusCompareAndSwap(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool)
	repo := NewOrderRepository(pool)
	o := newOrder(user.ID, "070326-002", time.Now())
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, entity.OrderStatusPending, entity.OrderStatusInPreparation, time.Now()))
	err := repo.UpdateStatus(ctx, o.ID, entity.OrderStatusPending, entity.OrderStatusCanceled, time.Now())
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInPreparation, got.Status)
}

func TestOrderRepo_ListFiltros(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool)
	repo := NewOrderRepository(pool)
	base := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	first := newOrder(user.ID, "070326-010", base)
	second := newOrder(user.ID, "070326-011", base.Add(time.Minute))
	second.Type = entity.OrderTypeRappi
	nextDay := newOrder(user.ID, "080326-001", base.Add(24*time.Hour))
	for _, o := range []*entity.Order{first, second, nextDay} {
		require.NoError(t, repo.Create(ctx, o))
	}

	from, to := base.Add(-time.Hour), base.Add(time.Hour)
	list, err := repo.List(ctx, repository.OrderFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "más reciente primero")

	list, err = repo.List(ctx, repository.OrderFilter{Type: entity.OrderTypeRappi})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.List(ctx, repository.OrderFilter{Statuses: entity.ActiveStatuses, Ascending: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestDaySequence_ConcurrenteSinRepetidos(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	seq := NewDaySequence(pool)
	day := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	const n = 30
	var (
		mu   sync.Mutex
		seen = map[int]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Next(ctx, day)
			assert.NoError(t, err)
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "falta %d", i)
	}

	v, err := seq.Next(ctx, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, v, "cada día reinicia")
}

func TestInventoryRepo_TxCompareAndSwap(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool)
	now := time.Now()
	item := &entity.InventoryItem{
		ID: uuid.New().String(), Name: "Leche", UnitMeasure: "lt",
		Quantity: decimal.NewFromInt(10), MinimumStock: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, NewInventoryRepository(pool).Create(ctx, item))

	runner := NewTxRunner(pool)
	err := runner.Run(ctx, func(items repository.InventoryRepository, movs repository.InventoryMovementRepository) error {
		locked, err := items.GetForUpdate(ctx, item.ID)
		require.NoError(t, err)
		next := locked.Quantity.Sub(decimal.NewFromInt(7))
		if err := items.UpdateQuantity(ctx, item.ID, locked.Quantity, next, time.Now()); err != nil {
			return err
		}
		return movs.Create(ctx, &entity.InventoryMovement{
			InventoryItemID: item.ID, Type: entity.MovementTypeOutbound, Quantity: decimal.NewFromInt(7),
			QuantityBefore: locked.Quantity, QuantityAfter: next, UserID: user.ID, CreatedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	low, err := NewInventoryRepository(pool).ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].Quantity.Equal(decimal.NewFromInt(3)))

	err = NewInventoryRepository(pool).UpdateQuantity(ctx, item.ID, decimal.NewFromInt(10), decimal.Zero, time.Now())
	assert.ErrorIs(t, err, domain.ErrConflict)

	// rollback: el movimiento falla por FK y la cantidad no cambia
	err = runner.Run(ctx, func(items repository.InventoryRepository, movs repository.InventoryMovementRepository) error {
		if err := items.UpdateQuantity(ctx, item.ID, decimal.NewFromInt(3), decimal.NewFromInt(100), time.Now()); err != nil {
			return err
		}
		return movs.Create(ctx, &entity.InventoryMovement{
			InventoryItemID: item.ID, Type: entity.MovementTypeInbound, Quantity: decimal.NewFromInt(97),
			QuantityBefore: decimal.NewFromInt(3), QuantityAfter: decimal.NewFromInt(100),
			UserID: uuid.New().String(), CreatedAt: time.Now(),
		})
	})
	require.Error(t, err)
	got, err := NewInventoryRepository(pool).GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(3)))

	movements, err := NewInventoryMovementRepository(pool).ListByItem(ctx, item.ID, 50)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "Ana", movements[0].UserName)
}

func TestSalesRepo_SoloEstadosContados(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	user := seedUser(t, pool)
	latte := seedProduct(t, pool, "Latte", "45.00", entity.CategoryHotDrink)
	repo := NewOrderRepository(pool)
	at := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)

	delivered := newOrder(user.ID, "070326-020", at)
	delivered.Status = entity.OrderStatusDelivered
	canceled := newOrder(user.ID, "070326-021", at.Add(time.Minute))
	canceled.Status = entity.OrderStatusCanceled
	for _, o := range []*entity.Order{delivered, canceled} {
		require.NoError(t, repo.Create(ctx, o))
		require.NoError(t, repo.CreateItems(ctx, []*entity.OrderItem{{
			ID: uuid.New().String(), OrderID: o.ID, ProductID: latte.ID, Quantity: 2,
			UnitPrice: latte.Price, Subtotal: decimal.RequireFromString("90.00"),
		}}))
	}

	sales, err := NewSalesRepository(pool).ListSalesOrders(ctx, at.Add(-time.Hour), at.Add(time.Hour), entity.CountedStatuses)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, delivered.ID, sales[0].ID)
	require.Len(t, sales[0].Items, 1)
	assert.Equal(t, entity.CategoryHotDrink, sales[0].Items[0].ProductCategory)
}

func TestMigrate_RegistraVersion(t *testing.T) {
	pool := setupPostgres(t)

	var version int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, 1, version)
}

func TestUserRepo_ActualizarYListar(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	ana := seedUser(t, pool)
	beto := seedUser(t, pool)
	beto.Name = "Beto"
	beto.Role = entity.RoleCocina
	beto.Active = false
	beto.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, beto))

	got, err := repo.GetByID(ctx, beto.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beto", got.Name)
	assert.Equal(t, entity.RoleCocina, got.Role)
	assert.False(t, got.Active)

	beto.Email = ana.Email
	assert.ErrorIs(t, repo.Update(ctx, beto), domain.ErrConflict)

	ghost := *beto
	ghost.ID = uuid.New().String()
	ghost.Email = "ghost@cafe.mx"
	assert.ErrorIs(t, repo.Update(ctx, &ghost), domain.ErrNotFound)

	all, err := repo.List(ctx, repository.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].Name)

	inactive := false
	cocina, err := repo.List(ctx, repository.UserFilter{Role: entity.RoleCocina, Active: &inactive})
	require.NoError(t, err)
	require.Len(t, cocina, 1)
	assert.Equal(t, beto.ID, cocina[0].ID)
}
