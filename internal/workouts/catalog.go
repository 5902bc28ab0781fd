package workouts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	catalogCacheSize     = 512 * 1024
	catalogCacheExpireIn = int(4 * time.Hour / time.Second)

	bodyPartsCacheKey = "bodyparts"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=workouts

type catalogRepo interface {
	BodyParts(ctx context.Context) ([]BodyPart, error)
	GetBodyPartByName(ctx context.Context, name string) (*BodyPart, error)
	StandardExercises(ctx context.Context, bodyPartID int) ([]StandardExercise, error)
	CustomExercises(ctx context.Context, userID, bodyPartID int) ([]CustomExercise, error)
}

// Catalog serves the body part vocabulary and the exercise lists,
// cached in memory since they change rarely.
type Catalog struct {
	repo  catalogRepo
	cache *freecache.Cache
}

func NewCatalog(repo catalogRepo) *Catalog {
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(catalogCacheSize),
	}
}

func (c *Catalog) BodyParts(ctx context.Context) ([]BodyPart, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.workouts.bodyParts")
	defer span.End()

	if cached, err := c.cache.Get([]byte(bodyPartsCacheKey)); err == nil {
		var bodyParts []BodyPart
		if err := json.Unmarshal(cached, &bodyParts); err == nil {
			return bodyParts, nil
		}
		log.Warnf("catalog: unmarshal cached body parts: %s", err)
	}

	bodyParts, err := c.repo.BodyParts(ctx)
	if err != nil {
		return nil, err
	}

	c.cacheSet(bodyPartsCacheKey, bodyParts)
	return bodyParts, nil
}

// StandardExercises returns the (cached) standard exercise catalog for one body part.
func (c *Catalog) StandardExercises(ctx context.Context, bodyPartName string) ([]StandardExercise, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.workouts.standardExercises")
	defer span.End()

	cacheKey := "standard-exercises||" + bodyPartName
	if cached, err := c.cache.Get([]byte(cacheKey)); err == nil {
		var exercises []StandardExercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
	}

	bodyPart, err := c.repo.GetBodyPartByName(ctx, bodyPartName)
	if err != nil {
		return nil, err
	}

	exercises, err := c.repo.StandardExercises(ctx, bodyPart.ID)
	if err != nil {
		return nil, err
	}

	c.cacheSet(cacheKey, exercises)
	return exercises, nil
}

// CustomExercises is per user and not cached.
func (c *Catalog) CustomExercises(ctx context.Context, userID int, bodyPartName string) ([]CustomExercise, error) {
	bodyPart, err := c.repo.GetBodyPartByName(ctx, bodyPartName)
	if err != nil {
		return nil, err
	}
	return c.repo.CustomExercises(ctx, userID, bodyPart.ID)
}

func (c *Catalog) cacheSet(key string, val any) {
	bytes, err := json.Marshal(val)
	if err != nil {
		log.Errorf("catalog: marshal cache value for [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), bytes, catalogCacheExpireIn); err != nil {
		log.Warnf("catalog: cache set [%s]: %s", key, err)
	}
}
