package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCartIndexModels(t *testing.T) {
	models := cartIndexModels()
	require.Len(t, models, 2)

	sessionKeys, ok := models[0].Keys.(bson.D)
	require.True(t, ok)
	require.Len(t, sessionKeys, 1)
	assert.Equal(t, "session_id", sessionKeys[0].Key)
	require.NotNil(t, models[0].Options.Unique)
	assert.True(t, *models[0].Options.Unique, "one cart document per session")

	ttlKeys, ok := models[1].Keys.(bson.D)
	require.True(t, ok)
	require.Len(t, ttlKeys, 1)
	assert.Equal(t, "updated_at", ttlKeys[0].Key)
	require.NotNil(t, models[1].Options.ExpireAfterSeconds)
	assert.Equal(t, int32(30*24*60*60), *models[1].Options.ExpireAfterSeconds)
}
