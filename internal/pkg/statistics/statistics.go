package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/cache"
	"github.com/wakapath/wakapath/internal/pkg/database"
	"github.com/wakapath/wakapath/internal/pkg/metrics/counter"
)

const (
	CacheKeyRoutesTotal        = "statistics:routes:total"
	CacheKeyPlacesTotal        = "statistics:places:total"
	CacheKeySubmissionsTotal   = "statistics:submissions:total"
	CacheKeySubmissionsPending = "statistics:submissions:pending"
	CacheExpiration            = 30 * time.Minute
)

// StatisticsData holds the catalog counters exposed by the stats endpoint
type StatisticsData struct {
	TotalRoutes        int `json:"total_routes"`
	TotalPlaces        int `json:"total_places"`
	TotalSubmissions   int `json:"total_submissions"`
	PendingSubmissions int `json:"pending_submissions"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cache is due for a refresh
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cache when the update interval has passed
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// UpdateStatisticsCache recounts all statistics and stores them in the cache.
// Pending route view counters are flushed to the database first so the
// counts reflect them.
func UpdateStatisticsCache() error {
	if err := counter.FlushAll(); err != nil {
		log.Printf("Error flushing view counters: %v", err)
	}

	db := database.GetDB()

	counts := []struct {
		key   string
		query func() (int64, error)
	}{
		{CacheKeyRoutesTotal, func() (int64, error) {
			var n int64
			return n, db.Model(&models.Route{}).Count(&n).Error
		}},
		{CacheKeyPlacesTotal, func() (int64, error) {
			var n int64
			return n, db.Model(&models.Place{}).Count(&n).Error
		}},
		{CacheKeySubmissionsTotal, func() (int64, error) {
			var n int64
			return n, db.Model(&models.RouteSubmission{}).Count(&n).Error
		}},
		{CacheKeySubmissionsPending, func() (int64, error) {
			var n int64
			return n, db.Model(&models.RouteSubmission{}).
				Where("status = ?", models.SubmissionStatusSubmitted).Count(&n).Error
		}},
	}

	for _, c := range counts {
		n, err := c.query()
		if err != nil {
			log.Printf("Error counting for %s: %v", c.key, err)
			return err
		}
		if err := cache.Set(c.key, strconv.FormatInt(n, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", c.key, err)
			return err
		}
	}

	return nil
}

// GetStatistics returns the current counters, refreshing the cache if needed
func GetStatistics() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalRoutes:        getCachedCount(CacheKeyRoutesTotal, &models.Route{}),
		TotalPlaces:        getCachedCount(CacheKeyPlacesTotal, &models.Place{}),
		TotalSubmissions:   getCachedCount(CacheKeySubmissionsTotal, &models.RouteSubmission{}),
		PendingSubmissions: getPendingCount(),
	}
}

// getCachedCount returns a counter from cache, falling back to the database
func getCachedCount(key string, model interface{}) int {
	val, err := cache.Get(key)
	if err == nil {
		if count, perr := strconv.ParseInt(val, 10, 64); perr == nil {
			return int(count)
		}
		return 0
	}

	var count int64
	db := database.GetDB()
	if err := db.Model(model).Count(&count).Error; err != nil {
		log.Printf("Error counting for %s: %v", key, err)
		return 0
	}
	if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching %s: %v", key, err)
	}
	return int(count)
}

func getPendingCount() int {
	val, err := cache.Get(CacheKeySubmissionsPending)
	if err == nil {
		if count, perr := strconv.ParseInt(val, 10, 64); perr == nil {
			return int(count)
		}
		return 0
	}

	var count int64
	db := database.GetDB()
	if err := db.Model(&models.RouteSubmission{}).
		Where("status = ?", models.SubmissionStatusSubmitted).Count(&count).Error; err != nil {
		log.Printf("Error counting pending submissions: %v", err)
		return 0
	}
	if err := cache.Set(CacheKeySubmissionsPending, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching pending submissions: %v", err)
	}
	return int(count)
}
