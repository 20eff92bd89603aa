// Command pathq runs the enemy pathfinder on a map and prints the result.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/config"
	"github.com/milk9111/isometric/grid"
	"github.com/milk9111/isometric/levels"
	"github.com/milk9111/isometric/pathfind"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pathq:", err)
		os.Exit(1)
	}
}

type result struct {
	Map       string        `json:"map"`
	From      common.Vec3   `json:"from"`
	To        common.Vec3   `json:"to"`
	Waypoints []common.Vec3 `json:"waypoints"`
	Cost      int           `json:"cost"`
	Expanded  int           `json:"expanded"`
	Error     string        `json:"error,omitempty"`
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pathq", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "isometric.toml", "path to the TOML config file")
	mapName := fs.String("map", "", "map name in levels/; defaults to game.start_map")
	from := fs.String("from", "", "start position as x,y[,z]")
	to := fs.String("to", "", "target position as x,y[,z]")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	list := fs.Bool("list", false, "list the embedded maps and exit")
	verbose := fs.Bool("v", false, "log map loading")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		names, err := levels.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}
	if *mapName == "" {
		*mapName = cfg.Game.StartMap
	}

	log := zap.NewNop()
	if *verbose {
		if log, err = config.NewLogger(cfg.Logging); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	lvl, err := levels.LoadLevel(*mapName)
	if err != nil {
		return err
	}
	if *to == "" {
		return errors.New("-to is required")
	}
	start, err := parseVec(*from, lvl.Spawn)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	goal, err := parseVec(*to, common.Vec3{})
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	solids := grid.NewSolidSet()
	solids.Replace(lvl.SolidCells())
	log.Info("map loaded", zap.String("map", *mapName), zap.Int("solid", solids.Len()))

	res := result{Map: levels.NameOf(*mapName), From: start, To: goal}
	finder := pathfind.NewFinder(grid.Headroom{Querier: solids})
	finder.MaxNodes = cfg.Pathfinding.MaxNodes
	finder.Margin = cfg.Pathfinding.Margin
	finder.OnExpand = func(grid.Cell) { res.Expanded++ }

	path, err := finder.FindPath(start, goal)
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Cost = path.Cost(grid.CellOf(start))
		for _, c := range path {
			res.Waypoints = append(res.Waypoints, c.Center())
		}
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printText(out, res)
	}
	return err
}

func printText(out io.Writer, res result) {
	fmt.Fprintf(out, "map %s: %s -> %s\n", res.Map, grid.CellOf(res.From), grid.CellOf(res.To))
	if res.Error != "" {
		fmt.Fprintf(out, "no path: %s (expanded %d)\n", res.Error, res.Expanded)
		return
	}
	for i, p := range res.Waypoints {
		fmt.Fprintf(out, "%3d  %s\n", i+1, grid.CellOf(p))
	}
	fmt.Fprintf(out, "steps %d, cost %d, expanded %d\n", len(res.Waypoints), res.Cost, res.Expanded)
}

// parseVec reads "x,y" or "x,y,z". An empty string yields def.
func parseVec(s string, def common.Vec3) (common.Vec3, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return common.Vec3{}, fmt.Errorf("want x,y[,z], got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return common.Vec3{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = f
	}
	return common.V3(v[0], v[1], v[2]), nil
}
