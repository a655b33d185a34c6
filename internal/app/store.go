// Package app assembles the record store and availability cache from
// configuration. Both binaries share it.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rangeroper/healthcare-scheduler/internal/config"
	"github.com/rangeroper/healthcare-scheduler/internal/db"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/blob"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/repository"
)

// OpenStore returns the configured backend and a func releasing it.
func OpenStore(cfg *config.Config, log *zap.Logger) (records.Store, func(), error) {
	if cfg.StoreDriver == config.StorePostgres {
		gdb, err := db.NewDB(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		log.Info("record store ready", zap.String("driver", config.StorePostgres))
		return repository.NewGormStore(gdb), closeFn, nil
	}

	bucket, err := OpenBucket(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("record store ready",
		zap.String("driver", config.StoreJSON),
		zap.String("blob", cfg.BlobDriver),
	)
	return repository.NewJSONStore(bucket, log), func() {}, nil
}

func OpenBucket(cfg *config.Config) (blob.Bucket, error) {
	switch cfg.BlobDriver {
	case config.BlobS3:
		return blob.NewS3(blob.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		}), nil
	case config.BlobDisk:
		return blob.NewDisk(cfg.DataDir)
	}
	return nil, fmt.Errorf("unknown blob driver %q", cfg.BlobDriver)
}

// OpenCache connects to redis when an address is configured. Without one,
// or when redis is unreachable, availability is computed on every request.
func OpenCache(cfg *config.Config, log *zap.Logger) cache.AvailabilityCache {
	if cfg.RedisAddr == "" {
		return cache.Noop{}
	}

	client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("availability cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return cache.Noop{}
	}

	log.Info("availability cache ready", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	return cache.NewRedisAvailabilityCache(client, cfg.CacheTTL, log)
}
