package config

import (
	"context"
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/service/storage"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Storage selects where uploaded files are kept
type Storage struct {
	uploadDir string
	gcsBucket string
	gcsPrefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "upload-dir",
			Usage:       "Directory for uploaded files",
			Category:    "Storage",
			Sources:     cli.EnvVars("JEUMALA_UPLOAD_DIR"),
			Destination: &x.uploadDir,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket for uploaded files",
			Category:    "Storage",
			Sources:     cli.EnvVars("JEUMALA_GCS_BUCKET"),
			Destination: &x.gcsBucket,
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix in the Cloud Storage bucket",
			Category:    "Storage",
			Value:       "uploads/",
			Sources:     cli.EnvVars("JEUMALA_GCS_PREFIX"),
			Destination: &x.gcsPrefix,
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("upload_dir", x.uploadDir),
		slog.String("gcs_bucket", x.gcsBucket),
		slog.String("gcs_prefix", x.gcsPrefix),
	)
}

// Configure returns nil storage when uploads are not configured
func (x *Storage) Configure(ctx context.Context) (interfaces.BlobStorage, func(), error) {
	if x.uploadDir != "" && x.gcsBucket != "" {
		return nil, nil, goerr.Wrap(ErrConflictingStorage, "set either --upload-dir or --gcs-bucket")
	}

	switch {
	case x.gcsBucket != "":
		gcs, err := storage.NewGCS(ctx, x.gcsBucket, x.gcsPrefix)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to initialize cloud storage")
		}
		logging.From(ctx).Info("Uploads stored in Cloud Storage", "bucket", x.gcsBucket)
		return gcs, func() { safe.Close(ctx, gcs, "storage", "gcs") }, nil

	case x.uploadDir != "":
		local, err := storage.NewLocal(x.uploadDir)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Info("Uploads stored on disk", "dir", x.uploadDir)
		return local, func() {}, nil
	}

	logging.From(ctx).Info("Upload storage not configured, uploads are disabled")
	return nil, func() {}, nil
}
