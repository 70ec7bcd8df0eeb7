package stores

import (
	"context"
	"os"

	"console-draw/core"
	"console-draw/stores/filesystem"
	"console-draw/stores/memory"
	"console-draw/stores/s3"
	"console-draw/stores/sqlite"

	"github.com/sirupsen/logrus"
)

// GetStore picks the backend for published drawings from STORAGE_TYPE.
func GetStore(ctx context.Context) core.DocumentStore {
	storageType := os.Getenv("STORAGE_TYPE")
	var store core.DocumentStore

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "filesystem":
		basePath := getenv("LOCAL_STORAGE_PATH", "./data")
		storageField["basePath"] = basePath
		store = filesystem.NewDocumentStore(basePath)
	case "sqlite":
		dataSourceName := getenv("DATA_SOURCE_NAME", "console-draw.db")
		storageField["dataSourceName"] = dataSourceName
		store = sqlite.NewDocumentStore(dataSourceName)
	case "s3":
		bucket := os.Getenv("S3_BUCKET_NAME")
		if bucket == "" {
			logrus.Fatal("S3_BUCKET_NAME is required for s3 storage")
		}
		storageField["bucket"] = bucket
		store = s3.NewDocumentStore(ctx, bucket)
	default:
		store = memory.NewDocumentStore()
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
