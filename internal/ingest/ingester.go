package ingest

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm/clause"

	"github.com/CaCortez384/MiFestival/internal/config"
	database "github.com/CaCortez384/MiFestival/internal/db"
	"github.com/CaCortez384/MiFestival/internal/directory"
	"github.com/CaCortez384/MiFestival/internal/models"
	"github.com/CaCortez384/MiFestival/internal/storage"
)

var (
	jobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_directory_jobs_total",
			Help: "Total directory ingest jobs",
		},
		[]string{"status"},
	)
	duration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "festival_directory_ingest_duration_seconds",
			Help:    "Processing time per CSV",
			Buckets: prometheus.DefBuckets,
		},
	)
	namesLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "festival_directory_names_total",
			Help: "Candidate names loaded from CSVs",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(jobs, duration, namesLoaded)
}

// Worker polls the ingest drop zone for artist-directory CSV exports
// and loads their names into the candidate table.
type Worker struct {
	cfg     *config.Config
	storage *storage.Client
	db      *database.Client
}

func New(cfg *config.Config, store *storage.Client, db *database.Client) *Worker {
	return &Worker{cfg: cfg, storage: store, db: db}
}

func (w *Worker) Run() {
	ticker := time.NewTicker(time.Duration(w.cfg.Server.PollingInterval) * time.Second)
	defer ticker.Stop()

	log.Printf("Watcher started on '%s'...", w.cfg.Storage.BucketIngest)
	w.processQueue()

	for range ticker.C {
		w.processQueue()
	}
}

func (w *Worker) processQueue() {
	keys, err := w.storage.ListDirectoryFiles()
	if err != nil {
		log.Printf("Error listing ingest area: %v", err)
		return
	}

	if len(keys) > 0 {
		log.Printf("Found %d CSV file(s) in ingest queue.", len(keys))
	}

	for _, key := range keys {
		log.Printf("Processing: %s", key)
		if err := w.processFile(key); err != nil {
			log.Printf("❌ FAILED %s: %v", key, err)
			jobs.WithLabelValues("failure").Inc()
		} else {
			log.Printf("✅ LOADED %s", key)
			jobs.WithLabelValues("success").Inc()
		}
	}
}

func (w *Worker) processFile(key string) error {
	timer := prometheus.NewTimer(duration)
	defer timer.ObserveDuration()

	obj, err := w.storage.DownloadDirectoryFile(key)
	if err != nil {
		return err
	}
	names, err := directory.ParseNames(obj.Body)
	obj.Body.Close()
	if err != nil {
		// Malformed file: drop it from the queue so it doesn't loop
		log.Printf("   ❌ Skipping malformed CSV: %s (%v)", key, err)
		return w.storage.DeleteDirectoryFile(key)
	}

	if len(names) > 0 {
		rows := make([]models.CandidateArtist, 0, len(names))
		for _, name := range names {
			rows = append(rows, models.CandidateArtist{Name: name})
		}
		err = w.db.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&rows).Error
		if err != nil {
			return err
		}
		namesLoaded.Add(float64(len(names)))
		log.Printf("   📇 %d candidate name(s) upserted", len(names))
	}

	return w.storage.DeleteDirectoryFile(key)
}
