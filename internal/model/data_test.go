package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataLimite(t *testing.T) {
	data, err := ParseDataLimite("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, data.Year())
	assert.Equal(t, time.February, data.Month())
	assert.Equal(t, 29, data.Day())

	data, err = ParseDataLimite("2025-11-30T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, 30, data.Day())

	_, err = ParseDataLimite("30/11/2025")
	assert.Error(t, err)
}

func TestEstaEmAtraso(t *testing.T) {
	agora := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

	assert.True(t, EstaEmAtraso("2024-06-14", agora), "ontem está em atraso")
	assert.False(t, EstaEmAtraso("2024-06-15", agora), "hoje não está em atraso")
	assert.False(t, EstaEmAtraso("2024-06-16", agora), "amanhã não está em atraso")
	assert.False(t, EstaEmAtraso("not-a-date", agora), "data inválida nunca está em atraso")

	// A hora do dia é irrelevante: só a data conta.
	assert.False(t, EstaEmAtraso("2024-06-15T00:00:01Z", agora))
}

func TestDataOnly(t *testing.T) {
	d := DataOnly(time.Date(2024, time.June, 15, 23, 59, 58, 7, time.UTC))
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestNovoID(t *testing.T) {
	a := NovoID("cat")
	b := NovoID("cat")

	assert.True(t, strings.HasPrefix(a, "cat_"))
	assert.NotEqual(t, a, b)
}
