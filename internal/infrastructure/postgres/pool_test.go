package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIPv4_Literales(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestWithIPv4Host(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "postgres://u:p@10.0.0.7:5432/cafe?sslmode=disable",
		withIPv4Host(ctx, "postgres://u:p@10.0.0.7/cafe?sslmode=disable"))
	assert.Equal(t, "postgres://u:p@10.0.0.7:6543/cafe",
		withIPv4Host(ctx, "postgres://u:p@10.0.0.7:6543/cafe"))
	// IPv6 literal y DSN clave=valor quedan intactos
	assert.Equal(t, "postgres://u:p@[::1]:5432/cafe", withIPv4Host(ctx, "postgres://u:p@[::1]:5432/cafe"))
	assert.Equal(t, "host=db user=u", withIPv4Host(ctx, "host=db user=u"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 10, orDefault(0, 10))
	assert.Equal(t, 10, orDefault(-1, 10))
	assert.Equal(t, 4, orDefault(4, 10))
}
