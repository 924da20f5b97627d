package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildPostFilterEmptyParams(t *testing.T) {
	filter := BuildPostFilter(nil)
	require.Len(t, filter, 1)
	assert.Equal(t, bson.E{Key: "isdeleted", Value: false}, filter[0])
}

func TestBuildPostFilterLowerCasesKeysAndQuotesValues(t *testing.T) {
	filter := BuildPostFilter(map[string]string{"Title": "Hello (World)"})
	require.Len(t, filter, 2)

	assert.Equal(t, "title", filter[0].Key)
	re, ok := filter[0].Value.(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `Hello \(World\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)

	assert.Equal(t, bson.E{Key: "isdeleted", Value: false}, filter[1])
}

func TestBuildPostFilterDeletedPresetCannotBeOverridden(t *testing.T) {
	filter := BuildPostFilter(map[string]string{"isdeleted": "true", "IsDeleted": "true"})
	require.Len(t, filter, 1)
	assert.Equal(t, bson.E{Key: "isdeleted", Value: false}, filter[0])
}

func TestBuildPostFilterDropsUnknownKeys(t *testing.T) {
	filter := BuildPostFilter(map[string]string{
		"title":     "x",
		"$where":    "sleep(1000)",
		"upvotes":   "9",
		"createdon": "2020",
	})
	require.Len(t, filter, 2)
	assert.Equal(t, "title", filter[0].Key)
	assert.Equal(t, "isdeleted", filter[1].Key)
}

func TestBuildPostFilterDeterministicOrder(t *testing.T) {
	params := map[string]string{"type": "Text", "postedby": "alice", "title": "a"}
	first := BuildPostFilter(params)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPostFilter(params))
	}
	assert.Equal(t, "postedby", first[0].Key)
	assert.Equal(t, "title", first[1].Key)
	assert.Equal(t, "type", first[2].Key)
}
