package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/gigit-app/gigit/backend/internal/config"
	"github.com/gigit-app/gigit/backend/internal/database"
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/internal/repository"
	"github.com/gigit-app/gigit/backend/internal/search"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	dryRun  = flag.Bool("dry-run", false, "Print what would be seeded without writing")
	verbose = flag.Bool("verbose", false, "Enable debug logging")
	limit   = flag.Int("limit", 40, "Number of musicians to seed")
	seed    = flag.Int64("seed", 1, "Random seed for reproducible data")
)

var firstNames = []string{
	"Dana", "Yoni", "Maya", "Tom", "Noa", "Amit", "Lior", "Shira",
	"Eitan", "Tamar", "Omer", "Michal", "Gal", "Roni", "Adi", "Oren",
}

var lastNames = []string{
	"Levi", "Cohen", "Mizrahi", "Peretz", "Katz", "Friedman", "Azulay",
	"Ben-David", "Shapiro", "Amar", "Golan", "Sharon",
}

var locations = map[search.Region][]string{
	search.RegionNorth:  {"Haifa", "Nahariya", "Tiberias", "Karmiel"},
	search.RegionCenter: {"Tel Aviv", "Ramat Gan", "Rishon LeZion", "Petah Tikva"},
	search.RegionSouth:  {"Beer Sheva", "Ashdod", "Ashkelon", "Eilat"},
}

var reviewTitles = []string{
	"Great energy all night",
	"Exactly what we wanted",
	"Would book again",
	"Good but started late",
	"The highlight of our event",
}

var reviewComments = []string{
	"Read the crowd perfectly and kept everyone on the dance floor until the very end.",
	"Professional from the first phone call to the last song. Equipment was top notch.",
	"Showed up on time, set up quickly, and the sound quality was excellent throughout.",
	"A little pricey but worth every shekel. Our guests are still talking about it.",
	"Flexible with our song requests and handled the schedule change without any fuss.",
}

func main() {
	flag.Parse()

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	rng := rand.New(rand.NewSource(*seed))
	musicians := generateMusicians(rng, *limit)

	if *dryRun {
		for _, m := range musicians {
			fmt.Printf("%s %s  [%s]  %s / %s  (%d reviews)\n",
				m.FirstName, m.LastName,
				strings.Join(m.Instruments, ", "),
				m.Region, m.Location, len(m.Reviews))
		}
		logger.WithField("count", len(musicians)).Info("Dry run complete, nothing written")
		return
	}

	dbManager, err := database.NewManager(&database.Config{
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to databases")
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		logger.WithError(err).Fatal("Database migration failed")
	}

	repoManager := repository.NewRepositoryManager(dbManager.DB)

	seeded := 0
	for _, m := range musicians {
		if err := repoManager.Musician.Create(context.Background(), m); err != nil {
			logger.WithError(err).WithField("musician", m.FirstName+" "+m.LastName).Error("Failed to seed musician")
			continue
		}
		seeded++
		logger.WithFields(logrus.Fields{
			"musician": m.FirstName + " " + m.LastName,
			"reviews":  len(m.Reviews),
		}).Debug("Seeded musician")
	}

	logger.WithField("count", seeded).Info("Seeding complete")
}

func generateMusicians(rng *rand.Rand, n int) []*models.Musician {
	instruments := search.Vocabulary(search.FacetInstrument)
	genres := search.Vocabulary(search.FacetGenre)
	eventTypes := search.Vocabulary(search.FacetEvent)
	regions := []search.Region{search.RegionNorth, search.RegionCenter, search.RegionSouth}

	musicians := make([]*models.Musician, 0, n)
	for i := 0; i < n; i++ {
		region := regions[rng.Intn(len(regions))]
		cities := locations[region]

		m := &models.Musician{
			FirstName:       firstNames[rng.Intn(len(firstNames))],
			LastName:        lastNames[rng.Intn(len(lastNames))],
			Instruments:     pick(rng, instruments, 1+rng.Intn(3)),
			Genres:          pick(rng, genres, 1+rng.Intn(3)),
			EventTypes:      pick(rng, eventTypes, 2+rng.Intn(4)),
			Region:          string(region),
			Location:        cities[rng.Intn(len(cities))],
			Bio:             fmt.Sprintf("Performing live for %d years across the country.", 1+rng.Intn(25)),
			Phone:           fmt.Sprintf("05%d-%07d", rng.Intn(10), rng.Intn(10000000)),
			ExperienceYears: 1 + rng.Intn(25),
			IsActive:        true,
		}

		for j := 0; j < rng.Intn(5); j++ {
			m.Reviews = append(m.Reviews, models.Review{
				ReviewerID: uuid.New(),
				Rating:     1 + rng.Intn(5),
				Title:      reviewTitles[rng.Intn(len(reviewTitles))],
				Comment:    reviewComments[rng.Intn(len(reviewComments))],
				EventType:  models.EventCategories[rng.Intn(len(models.EventCategories))],
			})
		}

		musicians = append(musicians, m)
	}

	return musicians
}

// pick selects k distinct values from vocab, preserving vocabulary order.
func pick(rng *rand.Rand, vocab []string, k int) models.StringArray {
	if k > len(vocab) {
		k = len(vocab)
	}
	chosen := make(map[int]bool, k)
	for len(chosen) < k {
		chosen[rng.Intn(len(vocab))] = true
	}
	out := make(models.StringArray, 0, k)
	for i, v := range vocab {
		if chosen[i] {
			out = append(out, v)
		}
	}
	return out
}
