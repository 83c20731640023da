package holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeriados(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PublicHolidays/2024/PT" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2024-01-01","localName":"Ano Novo","name":"New Year's Day","countryCode":"PT","fixed":true,"global":true,"counties":null,"launchYear":null,"types":["Public"]},
			{"date":"2024-04-25","localName":"Dia da Liberdade","name":"Freedom Day","countryCode":"PT","fixed":true,"global":true,"counties":null,"launchYear":1974,"types":["Public"]}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "PT")
	feriados := client.Feriados(context.Background(), 2024)

	require.Len(t, feriados, 2)
	assert.Equal(t, "Ano Novo", feriados[0].LocalName)
	assert.Equal(t, "PT", feriados[0].CountryCode)
	require.NotNil(t, feriados[1].LaunchYear)
	assert.Equal(t, 1974, *feriados[1].LaunchYear)
}

func TestFeriadosFalhaDegradaParaVazio(t *testing.T) {
	t.Run("status não OK", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "PT")
		assert.Empty(t, client.Feriados(context.Background(), 2024))
	})

	t.Run("resposta inválida", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "PT")
		assert.Empty(t, client.Feriados(context.Background(), 2024))
	})

	t.Run("servidor inacessível", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "PT")
		assert.Empty(t, client.Feriados(context.Background(), 2024))
	})
}

func TestMapa(t *testing.T) {
	m := Mapa([]Feriado{
		{Date: "2024-01-01", LocalName: "Ano Novo"},
		{Date: "2024-04-25", LocalName: "Dia da Liberdade"},
	})
	assert.Equal(t, map[string]string{
		"2024-01-01": "Ano Novo",
		"2024-04-25": "Dia da Liberdade",
	}, m)
}
