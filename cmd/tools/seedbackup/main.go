// seedbackup writes the sample seller dataset into the snapshot store, so a
// fresh environment has a disaster-recovery backup before the first live
// fetch ever succeeds.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/joho/godotenv"

	appcfg "github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/fallback"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := appcfg.Load()

	fr, err := storage.FromConfig(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	spec, _ := records.SpecFor(records.KindSeller)
	items := fallback.Provide(records.KindSeller)

	data, err := json.Marshal(items)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if err := fr.Storage.Put(ctx, spec.BackupKey, data); err != nil {
		log.Fatalf("write backup: %v", err)
	}
	ts, _ := json.Marshal(time.Now().UTC().Format(time.RFC3339))
	if err := fr.Storage.Put(ctx, spec.BackupKey+"_timestamp", ts); err != nil {
		log.Fatalf("write timestamp: %v", err)
	}

	log.Printf("seeded %d sellers into %s backup (%s)", len(items), fr.Driver, spec.BackupKey)
}
