package importer_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/notjagan/movedex/pkg/dextest"
	"github.com/notjagan/movedex/pkg/importer"
	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/typechart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	typeCSV = "id,name,description\n1,fire,Fire type\n2,grass,Grass type\n3,water,Water type\n"
	effCSV  = "id,name,description\n1,weak,Weak\n2,strong,Strong\n"
)

func TestImportFS(t *testing.T) {
	mdl := dextest.NewWritableModel(t)
	ctx := context.Background()

	summary, err := importer.New(mdl).ImportFS(ctx, dextest.Fixtures())
	require.NoError(t, err)

	assert.Equal(t, 9, summary["pokemon"])
	assert.Equal(t, 20, summary["type_effectiveness"])
	assert.Equal(t, 15, summary["attack"])
	assert.Equal(t, 28, summary["pokemon_attack"])
	assert.Equal(t, 3, summary["egg"])
	assert.Equal(t, 7, summary["pokemon_egg"])
	assert.Equal(t, 3, summary["item"])

	pokemon, err := mdl.PokemonByName(ctx, "lotad")
	require.NoError(t, err)
	types, err := pokemon.Types(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestImportFS_SkipsMissingTables(t *testing.T) {
	mdl := dextest.NewWritableModel(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"table_type.csv":          {Data: []byte(typeCSV)},
		"table_effectiveness.csv": {Data: []byte(effCSV)},
	}

	summary, err := importer.New(mdl).ImportFS(ctx, fsys)
	require.NoError(t, err)
	assert.Equal(t, importer.Summary{"type": 3, "effectiveness": 2}, summary)

	types, err := mdl.AllTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)
}

func TestImportFS_RejectsConflictingEdges(t *testing.T) {
	mdl := dextest.NewWritableModel(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"table_type.csv":          {Data: []byte(typeCSV)},
		"table_effectiveness.csv": {Data: []byte(effCSV)},
		"table_type_effectiveness.csv": {Data: []byte(
			"from_type_id,to_type_id,effectiveness_id\n1,2,2\n1,2,1\n",
		)},
	}

	_, err := importer.New(mdl).ImportFS(ctx, fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, typechart.ErrDataIntegrity)
	assert.Contains(t, err.Error(), `"fire" -> "grass"`)

	// nothing was written
	types, err := mdl.AllTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestImportTable(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts rows", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		n, err := importer.New(mdl).ImportTable(ctx, "type", strings.NewReader(typeCSV))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("columns in any order", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		n, err := importer.New(mdl).ImportTable(ctx, "type",
			strings.NewReader("description,name,id\nFire type,fire,1\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		typ, err := mdl.TypeByName(ctx, "fire")
		require.NoError(t, err)
		assert.Equal(t, 1, typ.ID)
	})

	t.Run("unknown table", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		_, err := importer.New(mdl).ImportTable(ctx, "user", strings.NewReader(""))
		assert.ErrorIs(t, err, importer.ErrUnknownTable)
	})

	t.Run("missing column", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		_, err := importer.New(mdl).ImportTable(ctx, "type", strings.NewReader("id,name\n1,fire\n"))
		assert.ErrorIs(t, err, importer.ErrMissingColumn)
	})

	t.Run("bad integer reports line", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		_, err := importer.New(mdl).ImportTable(ctx, "type",
			strings.NewReader("id,name,description\n1,fire,Fire\nx,grass,Grass\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("zero cooldown attack", func(t *testing.T) {
		mdl := dextest.NewWritableModel(t)
		_, err := importer.New(mdl).ImportTable(ctx, "attack", strings.NewReader(
			"id,name,description,type_id,power,energy,cooldown_time,attack_speed_id\n"+
				"1,splash,Does nothing.,1,10,0,0.00,1\n",
		))
		assert.ErrorIs(t, err, typechart.ErrDataIntegrity)
	})
}

func TestImport_ReadOnlyModel(t *testing.T) {
	mdl := dextest.NewModel(t)
	_, err := importer.New(mdl).ImportTable(context.Background(), "type", strings.NewReader(typeCSV))
	assert.ErrorIs(t, err, model.ErrReadOnly)
}
