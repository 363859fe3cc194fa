package migration

import (
	"cuisto-web/entities"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// aggregateFunctions are the stored functions the discovery queries call.
// Production databases own their definitions; these keep development and
// test databases in step.
var aggregateFunctions = []string{
	`CREATE OR REPLACE FUNCTION get_trending_recipes(time_window_days integer, limit_param integer, offset_param integer)
RETURNS TABLE (recipe_id uuid, cook_count bigint, unique_users bigint)
LANGUAGE sql STABLE AS $$
	SELECT cs.recipe_id, COUNT(*) AS cook_count, COUNT(DISTINCT cs.user_id) AS unique_users
	FROM cooking_sessions cs
	JOIN recipes r ON r.id = cs.recipe_id
	WHERE cs.cooked_at >= now() - make_interval(days => time_window_days)
	  AND r.is_public = true
	  AND r.is_draft = false
	GROUP BY cs.recipe_id
	ORDER BY cook_count DESC, cs.recipe_id ASC
	LIMIT limit_param OFFSET offset_param
$$;`,
	`CREATE OR REPLACE FUNCTION get_popular_recipes(category_id_param uuid, limit_param integer, offset_param integer)
RETURNS SETOF recipes
LANGUAGE sql STABLE AS $$
	SELECT r.*
	FROM recipes r
	WHERE r.is_public = true
	  AND r.is_draft = false
	  AND (category_id_param IS NULL OR r.category_id = category_id_param)
	ORDER BY COALESCE(r.total_times_cooked, 0) DESC, COALESCE(r.average_rating, 0) DESC, r.id ASC
	LIMIT limit_param OFFSET offset_param
$$;`,
}

func Migrate(db *gorm.DB, log zerolog.Logger) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("creating uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"category", &entities.Category{}},
		{"recipe", &entities.Recipe{}},
		{"cooking session", &entities.CookingSession{}},
		{"extraction job", &entities.ExtractionJob{}},
		{"blog post", &entities.BlogPost{}},
		{"waitlist", &entities.WaitlistEntry{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
		log.Debug().Str("table", m.name).Msg("migrated")
	}

	for _, fn := range aggregateFunctions {
		if err := db.Exec(fn).Error; err != nil {
			return fmt.Errorf("installing aggregate function: %w", err)
		}
	}

	log.Info().Msg("database migration complete")
	return nil
}
