package bootstrap

import (
	"log/slog"

	"github.com/GregMSThompson/pfm-advisor/internal/catalog"
	"github.com/GregMSThompson/pfm-advisor/internal/config"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/matcher"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

type Bootstrap struct {
	Log     *slog.Logger
	Matcher *matcher.Index
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Matcher, err = InitMatcher(cfg.CatalogPath)
	if err != nil {
		return bs, err
	}
	bs.Log.Info("service catalog loaded", "entries", bs.Matcher.Len(), "path", cfg.CatalogPath)

	return bs, nil
}

// InitMatcher fits the endpoint matcher on the catalog at path, or on the
// embedded catalog when path is empty.
func InitMatcher(path string) (*matcher.Index, error) {
	rc, err := catalog.Open(path)
	if err != nil {
		return nil, errs.NewCatalogError("open catalog", err)
	}
	defer rc.Close()

	entries, err := matcher.LoadCatalog(rc)
	if err != nil {
		return nil, errs.NewCatalogError("load catalog", err)
	}
	return matcher.NewIndex(entries), nil
}
