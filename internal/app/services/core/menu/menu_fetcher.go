package menu

import (
	"context"
	"net/http"
	"time"

	"messmenu-service/internal/app/config"
	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type menuFetcher struct {
	httpClient *http.Client
	sourceURL  string
	limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewMenuFetcher builds the HTTP client for the remote menu document. The
// limiter throttles outbound fetches so client-triggered refreshes cannot
// hammer the upstream source.
func NewMenuFetcher(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MenuFetcher {
	perMinute := internalConfig.Menu.FetchPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	return &menuFetcher{
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Menu.FetchTimeoutInSeconds) * time.Second,
		},
		sourceURL: internalConfig.Menu.SourceURL,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), internalConfig.Menu.FetchBurst),
		Log:       logger,
	}
}

func (f *menuFetcher) Fetch(ctx context.Context) (*models.MenuDocument, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrFetchMenuDocument(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, f.sourceURL, nil)
	if err != nil {
		return nil, exceptions.ErrBuildMenuRequest(err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrFetchMenuDocument(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.Log.Warn("menuFetcher.Fetch upstream returned non-success status",
			zap.String(constvars.LoggingMenuSourceKey, f.sourceURL),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrMenuSourceBadStatus(nil)
	}

	doc := new(models.MenuDocument)
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, exceptions.ErrDecodeMenuDocument(err)
	}

	if err := utils.ValidateStruct(doc); err != nil {
		return nil, exceptions.ErrMenuDocumentInvalid(err)
	}

	f.dropUnknownKeys(doc)

	f.Log.Info("menuFetcher.Fetch succeeded",
		zap.String(constvars.LoggingMenuSourceKey, f.sourceURL),
		zap.String(constvars.LoggingWeekStartKey, doc.Meta.WeekStart),
	)
	return doc, nil
}

// dropUnknownKeys removes day or meal names outside the closed enumerations.
// The document is keyed by free JSON strings on the wire; everything the
// resolver reads must be a known weekday and slot.
func (f *menuFetcher) dropUnknownKeys(doc *models.MenuDocument) {
	for day, meals := range doc.Menu {
		if !day.IsValid() {
			f.Log.Warn("menuFetcher.Fetch dropping unknown weekday key",
				zap.String("weekday", string(day)),
			)
			delete(doc.Menu, day)
			continue
		}
		for meal := range meals {
			if !meal.IsValid() {
				f.Log.Warn("menuFetcher.Fetch dropping unknown meal key",
					zap.String("meal", string(meal)),
				)
				delete(meals, meal)
			}
		}
	}
}
