// Command ink-and-iron-server generates a world map and serves it over HTTP.
//
// Endpoints:
//
//	/map.png                  rendered height map
//	/path/{start}/{goal}      shortest traversable path between two cells
//	/cell?x=..&y=..           cell lookup by world position
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/gorilla/mux"

	"github.com/cosiestdevil/ink-and-iron/pathfinding"
	"github.com/cosiestdevil/ink-and-iron/worldgen"
)

var (
	worldmap *worldgen.WorldMap
	navgraph *pathfinding.Graph
)

var (
	addr    = flag.String("addr", ":3333", "listen address")
	seedStr = flag.String("seed", "", "base-36 world seed (random if empty)")
)

func main() {
	flag.Parse()

	seed := time.Now().UnixNano()
	if *seedStr != "" {
		var err error
		seed, err = strconv.ParseInt(*seedStr, 36, 64)
		if err != nil {
			log.Fatal("invalid seed: ", err)
		}
	}

	wm, err := worldgen.Generate(worldgen.NewParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}
	worldmap = wm
	navgraph = pathfinding.BuildGraph(wm)
	log.Println("Seed: ", strconv.FormatInt(seed, 36))

	log.Fatal(http.ListenAndServe(*addr, newRouter()))
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/map.png", mapHandler)
	router.HandleFunc("/path/{start}/{goal}", pathHandler)
	router.HandleFunc("/cell", cellHandler)
	return router
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := worldmap.WritePNG(&buf); err != nil {
		log.Println(err)
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Write(buf.Bytes())
}

type pathResponse struct {
	Cells []worldgen.CellID `json:"cells"`
	Found bool              `json:"found"`
}

func pathHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	start, err := parseCellID(vars["start"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	goal, err := parseCellID(vars["goal"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	path := pathfinding.FindPath(navgraph, start, goal)
	writeJSON(res, pathResponse{Cells: path, Found: path != nil})
}

type cellResponse struct {
	ID     worldgen.CellID `json:"id"`
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
	Height float64         `json:"height"`
}

func cellHandler(res http.ResponseWriter, req *http.Request) {
	x, err := strconv.ParseFloat(req.URL.Query().Get("x"), 64)
	if err != nil {
		http.Error(res, "invalid x", http.StatusBadRequest)
		return
	}
	y, err := strconv.ParseFloat(req.URL.Query().Get("y"), 64)
	if err != nil {
		http.Error(res, "invalid y", http.StatusBadRequest)
		return
	}
	id, ok := worldmap.CellForPosition(vectors.NewVec2(x, y))
	if !ok {
		http.Error(res, "position outside map bounds", http.StatusNotFound)
		return
	}
	pos := worldmap.Position(id)
	writeJSON(res, cellResponse{
		ID:     id,
		X:      pos.X,
		Y:      pos.Y,
		Height: worldmap.Height(id),
	})
}

// parseCellID parses and bounds-checks a client-supplied cell id so a
// bad request can never reach the panicking precondition of the map and
// graph accessors.
func parseCellID(s string) (worldgen.CellID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= worldmap.NumCells() {
		return 0, fmt.Errorf("cell id %d out of range [0, %d)", v, worldmap.NumCells())
	}
	return worldgen.CellID(v), nil
}

func writeJSON(res http.ResponseWriter, v interface{}) {
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(v); err != nil {
		log.Println(err)
	}
}
