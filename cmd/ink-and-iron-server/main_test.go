package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosiestdevil/ink-and-iron/pathfinding"
	"github.com/cosiestdevil/ink-and-iron/worldgen"
)

func setupWorld(t *testing.T) {
	t.Helper()
	if worldmap != nil {
		return
	}
	p := worldgen.NewParams()
	p.PlateCount = 3
	p.PlateSize = 4
	p.ContinentCount = 4
	p.ContinentSize = 30
	p.OceanCount = 4
	p.OceanSize = 30

	wm, err := worldgen.Generate(p, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	worldmap = wm
	navgraph = pathfinding.BuildGraph(wm)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestPathHandlerRejectsOutOfRangeIDs(t *testing.T) {
	setupWorld(t)

	// Ids past the end and negative ids must come back as client
	// errors instead of reaching the graph accessors.
	rec := get(t, "/path/0/999999")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, "/path/-1/0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, "/path/999999/0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, "/path/abc/0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPathHandlerValidQuery(t *testing.T) {
	setupWorld(t)

	rec := get(t, "/path/0/0")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, []worldgen.CellID{0}, resp.Cells)
}

func floatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestCellHandler(t *testing.T) {
	setupWorld(t)

	pos := worldmap.Position(0)
	rec := get(t, "/cell?x="+floatParam(pos.X)+"&y="+floatParam(pos.Y))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp cellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, worldgen.CellID(0), resp.ID)

	rec = get(t, "/cell?x=-100&y=0")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, "/cell?x=bogus&y=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
