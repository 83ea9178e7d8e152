package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/cafeteria/internal/adapter/handler"
	"github.com/rl1809/cafeteria/internal/core/service"
	"github.com/rl1809/cafeteria/internal/instrumentation"
)

const expectedOutput = "Notificación: Producto agregado: Crema\n" +
	"Notificación: Producto agregado: Azucar\n" +
	"Notificación: Producto eliminado: Leche\n" +
	"Notificación: Producto no encontrado: Torta\n" +
	"Almacén de Almacén Central: [Cafe, Galletas, Crema, Azucar]\n"

// isolateEnv keeps integrations configured on the host from being enabled.
func isolateEnv(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "REDIS_ADDR", "REDIS_CHANNEL", "REDIS_HISTORY_KEY", "REDIS_HISTORY_SIZE", "MYSQL_DSN", "HTTP_ADDR"} {
		if val, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, val) })
			os.Unsetenv(key)
		}
	}
}

func TestRootCmd_Script(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, expectedOutput, out.String())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	isolateEnv(t)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--log-level", "loud"})

	assert.Error(t, cmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cafeteria version dev\n", out.String())
}

func TestRunScript_Idempotent(t *testing.T) {
	var out bytes.Buffer
	provider := service.NewStockProvider(service.NewNotifier(nil), nil)
	provider.Initialize(storeLabel, initialItems)

	require.NoError(t, runScript(context.Background(), provider, &out))

	stock, ok := provider.Current()
	require.True(t, ok)
	assert.Equal(t, []string{"Cafe", "Galletas", "Crema", "Azucar"}, stock.Items())
	assert.Equal(t, "Almacén de Almacén Central: [Cafe, Galletas, Crema, Azucar]\n", out.String())
}

func TestNewMux(t *testing.T) {
	registry := prometheus.NewRegistry()
	stats := instrumentation.NewCollectors()
	require.NoError(t, stats.Register(registry))

	provider := service.NewStockProvider(service.NewNotifier(nil), stats)
	var out bytes.Buffer
	require.NoError(t, runScript(context.Background(), provider, &out))
	stock, _ := provider.Current()

	srv := httptest.NewServer(newMux(stock, registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/stock")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body handler.StockHTTPResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, storeLabel, body.Label)
	assert.Equal(t, []string{"Cafe", "Galletas", "Crema", "Azucar"}, body.Items)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `cafeteria_stock_events_total{kind="not_found",store="Almacén Central"} 1`)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	provider := service.NewStockProvider(service.NewNotifier(nil), nil)
	stock := provider.Initialize(storeLabel, initialItems)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serve(ctx, "127.0.0.1:0", stock, prometheus.NewRegistry()))
}
