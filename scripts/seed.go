// Seeds a development database with a small campus directory: a few
// universities, their campuses and buildings, searchable locations with
// tags, and the admin account.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusinsider/campus-insider/internal/adapters/database"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	"github.com/campusinsider/campus-insider/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				ratings,
				location_tags,
				locations,
				location_requests,
				buildings,
				campuses,
				universities,
				tags,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to truncate tables")
		}
	}

	universities := database.NewUniversityAdapter(pgClient)
	users := database.NewUserAdapter(pgClient)

	seedTags(ctx, pgClient)

	firstUniversityID := 0
	for _, seed := range seedUniversities() {
		u := seed.university
		if err := universities.Create(ctx, &u); err != nil {
			log.Warn().Err(err).Str("university", u.Name).Msg("skipping university")
			continue
		}
		if firstUniversityID == 0 {
			firstUniversityID = u.ID
		}
		log.Info().Str("university", u.Name).Int("id", u.ID).Msg("seeded university")

		for _, campusSeed := range seed.campuses {
			campus := entities.Campus{UniversityID: u.ID, Name: campusSeed.name}
			if err := universities.CreateCampus(ctx, &campus); err != nil {
				log.Warn().Err(err).Str("campus", campus.Name).Msg("skipping campus")
				continue
			}

			for _, buildingName := range campusSeed.buildings {
				building := entities.Building{CampusID: campus.ID, Name: buildingName}
				if err := universities.CreateBuilding(ctx, &building); err != nil {
					log.Warn().Err(err).Str("building", buildingName).Msg("skipping building")
					continue
				}
				seedRooms(ctx, pgClient, campus.ID, building.ID, buildingName)
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}
	admin := &entities.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
		UniversityID: firstUniversityID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Warn().Err(err).Msg("admin account already present")
	}

	log.Info().Msg("seeding complete")
}

type campusSeed struct {
	name      string
	buildings []string
}

type universitySeed struct {
	university entities.University
	campuses   []campusSeed
}

func seedUniversities() []universitySeed {
	return []universitySeed{
		{
			university: entities.University{Name: "Pacific State University", State: "CA", WikiURL: "https://en.wikipedia.org/wiki/Pacific_State_University"},
			campuses: []campusSeed{
				{name: "Main Campus", buildings: []string{"Harper Library", "Engineering Hall"}},
				{name: "North Campus", buildings: []string{"Science Center"}},
			},
		},
		{
			university: entities.University{Name: "Lakeview College", State: "MN"},
			campuses: []campusSeed{
				{name: "Lakeside", buildings: []string{"Anderson Hall"}},
			},
		},
	}
}

func seedRooms(ctx context.Context, pgClient *postgres.Client, campusID, buildingID int, buildingName string) {
	rooms := []struct {
		number string
		size   string
		kind   string
	}{
		{"101", "small", "study_room"},
		{"204", "medium", "classroom"},
		{"310", "large", "lecture_hall"},
	}

	for _, room := range rooms {
		display := buildingName + " - Room " + room.number
		canonical := buildingName + " " + room.number
		_, err := pgClient.DB().ExecContext(ctx, `
			INSERT INTO locations (campus_id, building_id, name, display_name, location_type, room_number, room_size, room_type)
			VALUES ($1, $2, $3, $4, 'Room', $5, $6, $7)
			ON CONFLICT DO NOTHING
		`, campusID, buildingID, canonical, display, room.number, room.size, room.kind)
		if err != nil {
			log.Warn().Err(err).Str("room", display).Msg("skipping room")
		}
	}
}

func seedTags(ctx context.Context, pgClient *postgres.Client) {
	vocabularies := map[string][]string{
		"equipment":     {"projector", "whiteboard", "standing_desk", "power_outlets", "wifi_6"},
		"accessibility": {"wheelchair_access", "elevator", "ramp", "hearing_loop"},
	}

	for kind, tags := range vocabularies {
		for position, tag := range tags {
			_, err := pgClient.DB().ExecContext(ctx, `
				INSERT INTO tags (kind, name, position)
				VALUES ($1, $2, $3)
				ON CONFLICT DO NOTHING
			`, kind, tag, position)
			if err != nil {
				log.Warn().Err(err).Str("tag", tag).Msg("skipping tag")
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
