package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"food-order/config"
	"food-order/internal/domain"
	"food-order/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a store in a temporary directory.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_PATH", dbPath)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func openForTest(t *testing.T, dbPath string) *storage.Store {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Path = dbPath
	store, err := config.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	return store
}

func TestMigrateCreatesStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "food-order", "FoodOrder.sqlite")

	_, err := run(t, dbPath, "migrate")
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestPlaceOrderAndHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "FoodOrder.sqlite")

	_, err := run(t, dbPath, "seed")
	require.NoError(t, err)

	// Orders reference a user; create one through the store directly.
	store := openForTest(t, dbPath)
	userID, err := store.CreateUser(context.Background(), "alice", "Secret1")
	require.NoError(t, err)
	store.Close()

	out, err := run(t, dbPath, "place-order",
		"--user", "1", "--restaurant", "1", "--address", "X",
		"--payment", string(domain.PaymentOnline), "--items", "1,2,12.5,2,1,11")
	require.NoError(t, err)
	assert.Contains(t, out, "Order 1 placed, total 36.00")

	out, err = run(t, dbPath, "orders", "1")
	require.NoError(t, err)

	var orders []domain.Order
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, userID, orders[0].UserID)
	assert.Equal(t, 36.0, orders[0].TotalPrice)
	assert.Len(t, orders[0].Items, 2)
}

func TestPlaceOrderRejectsMalformedItems(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "FoodOrder.sqlite")

	_, err := run(t, dbPath, "place-order", "--user", "1", "--restaurant", "1", "--items", "1,x,2")
	assert.Error(t, err)
}

func TestOrdersRequiresNumericUser(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "FoodOrder.sqlite"), "orders", "alice")
	assert.ErrorContains(t, err, "user id")
}

func TestPlaceOrderKeepsStatedZeroTotal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "FoodOrder.sqlite")

	_, err := run(t, dbPath, "seed")
	require.NoError(t, err)
	store := openForTest(t, dbPath)
	_, err = store.CreateUser(context.Background(), "alice", "Secret1")
	require.NoError(t, err)
	store.Close()

	out, err := run(t, dbPath, "place-order",
		"--user", "1", "--restaurant", "1", "--total", "0", "--items", "1,2,12.5")
	require.NoError(t, err)
	assert.Contains(t, out, "total 0.00")
}
