// cityd runs the simulation headless behind the websocket server, with
// optional snapshot restore on boot and periodic autosaves.
package main

import (
	"flag"
	"log"
	"time"

	"microcity/internal/persist"
	"microcity/internal/server"
	"microcity/internal/sims/city"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Uint64("seed", 42, "seed for terrain generation")
	tps := flag.Int("tps", 30, "simulation frames per second")
	level := flag.String("level", "easy", "difficulty: easy, medium or hard")
	dbPath := flag.String("db", "city.db", "snapshot database path")
	restore := flag.String("restore", "", "snapshot name to restore on boot")
	autosave := flag.Duration("autosave", 5*time.Minute, "autosave interval (0 disables)")
	flag.Parse()

	cfg := city.DefaultConfig()
	cfg.Seed = *seed
	switch *level {
	case "medium":
		cfg.Level = city.LevelMedium
	case "hard":
		cfg.Level = city.LevelHard
	}
	sim := city.NewWithConfig(cfg)

	store, err := persist.Open(*dbPath)
	if err != nil {
		log.Fatalf("open snapshot store: %v", err)
	}
	defer store.Close()

	if *restore != "" {
		if err := store.Load(*restore, sim); err != nil {
			log.Fatalf("restore %q: %v", *restore, err)
		}
		log.Printf("restored snapshot %q at city time %d", *restore, sim.CityTime())
	}

	srv := server.New(sim, *tps)

	if *autosave > 0 {
		go func() {
			for range time.Tick(*autosave) {
				srv.WithLock(func() {
					if err := store.Save("autosave", sim); err != nil {
						log.Printf("autosave failed: %v", err)
					}
				})
			}
		}()
	}

	log.Fatal(srv.ListenAndServe(*addr))
}
