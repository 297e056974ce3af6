package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"text/template"
	"time"

	"devicequote/config"
	"devicequote/internal/domain/entity"
	"devicequote/internal/domain/pricing"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/usecase"

	"go.uber.org/fx"
)

// TopRepairIssues are the repairs shown on every quote page, most requested first.
var TopRepairIssues = []string{"screen", "battery", "charging-port", "back-glass", "rear-camera"} //nolint:gochecknoglobals

const defaultVariantLabel = "standard"

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx
type QuoteServiceParams struct {
	fx.In

	Cache  service.PricingCache
	Config *config.Config
	Logger *slog.Logger
}

type languageTemplates struct {
	title               *template.Template
	description         *template.Template
	unpricedTitle       *template.Template
	unpricedDescription *template.Template
}

type quoteMemo struct {
	dataset *entity.DeviceDataset
	quote   *entity.Quote
}

type quoteService struct {
	cache        service.PricingCache
	location     string
	defaultImage string
	templates    map[entity.Language]languageTemplates
	logger       *slog.Logger
	now          func() time.Time

	mu    sync.Mutex
	memos map[string]quoteMemo
}

// NewQuoteService creates a new quote service instance. It fails when a
// language template does not parse.
func NewQuoteService(params QuoteServiceParams) (usecase.QuoteUsecase, error) {
	return newQuoteService(params.Cache, params.Config.Site, params.Logger)
}

func newQuoteService(cache service.PricingCache, site *config.SiteConfig, logger *slog.Logger) (*quoteService, error) {
	templates, err := parseLanguageTemplates()
	if err != nil {
		return nil, err
	}

	s := &quoteService{
		cache:     cache,
		templates: templates,
		logger:    logger,
		now:       time.Now,
		memos:     make(map[string]quoteMemo),
	}
	if site != nil {
		s.location = site.Location
		s.defaultImage = site.DefaultImage
	}

	return s, nil
}

func parseLanguageTemplates() (map[entity.Language]languageTemplates, error) {
	out := make(map[entity.Language]languageTemplates, len(entity.Languages()))

	for _, lang := range entity.Languages() {
		profile := lang.Profile()

		var (
			lt  languageTemplates
			err error
		)
		parse := func(name, text string) *template.Template {
			if err != nil {
				return nil
			}
			var t *template.Template
			t, err = template.New(lang.String() + "." + name).Option("missingkey=error").Parse(text)

			return t
		}

		lt.title = parse("title", profile.TitleTemplate)
		lt.description = parse("description", profile.DescriptionTemplate)
		lt.unpricedTitle = parse("unpricedTitle", profile.UnpricedTitle)
		lt.unpricedDescription = parse("unpricedDescription", profile.UnpricedDescription)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s templates", lang)
		}

		out[lang] = lt
	}

	return out, nil
}

// BuildQuote returns the shared quote for deviceID, rebuilding it only when
// the cached dataset changed.
func (s *quoteService) BuildQuote(ctx context.Context, deviceID string) (*entity.Quote, error) {
	ds, err := loadDataset(ctx, s.cache, deviceID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	memo, ok := s.memos[deviceID]
	s.mu.Unlock()
	if ok && memo.dataset == ds {
		return memo.quote, nil
	}

	quote := s.AssembleQuote(ds)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have built the same dataset meanwhile; keep theirs so
	// everyone shares one object.
	if memo, ok := s.memos[deviceID]; ok && memo.dataset == ds {
		return memo.quote, nil
	}
	s.memos[deviceID] = quoteMemo{dataset: ds, quote: quote}

	return quote, nil
}

// AssembleQuote builds a quote from ds without touching the memo.
func (s *quoteService) AssembleQuote(ds *entity.DeviceDataset) *entity.Quote {
	quote := &entity.Quote{
		DeviceID:    ds.Device.ID,
		DeviceName:  ds.Device.DisplayName(),
		Category:    ds.Device.Category,
		Buyback:     assembleBuyback(ds),
		Repair:      assembleRepair(ds),
		DeviceImage: ds.Device.ImageURL,
		AssembledAt: s.now(),
	}
	if quote.DeviceImage == "" {
		quote.DeviceImage = s.defaultImage
	}

	quote.SEO = s.renderSEO(ds.Device, quote.Buyback)

	return quote
}

// assembleBuyback takes the maximum over all tiers at the top storage option.
// Tiers without a record fall back to the anchor like any single quote would.
func assembleBuyback(ds *entity.DeviceDataset) entity.BuybackQuote {
	bq := entity.BuybackQuote{
		PerStorage: make(map[string]map[entity.ConditionTier]int64),
		Unpriced:   true,
	}

	storages := ds.Storages()
	for _, rec := range ds.BuybackRecords {
		storage := entity.NormalizeStorage(rec.Storage)
		if _, ok := bq.PerStorage[storage]; !ok {
			bq.PerStorage[storage] = make(map[entity.ConditionTier]int64)
		}
		if best, ok := ds.FindPriceRecord(storage, rec.Tier); ok {
			bq.PerStorage[storage][rec.Tier] = best.Price.Round(0).IntPart()
		}
	}

	top := ""
	if len(storages) > 0 {
		top = entity.NormalizeStorage(storages[0])
		bq.TopStorage = top
	}

	for _, tier := range entity.ConditionTiers() {
		res := pricing.ResolveBuyback(ds, top, pricing.RepresentativeInput(tier))
		if res.Unpriced {
			continue
		}
		price := res.Rounded().IntPart()
		if bq.Unpriced || price > bq.MaxPrice {
			bq.MaxPrice = price
		}
		bq.Unpriced = false
	}

	if len(bq.PerStorage) == 0 {
		bq.PerStorage = nil
	}

	return bq
}

func assembleRepair(ds *entity.DeviceDataset) entity.RepairQuote {
	rq := entity.RepairQuote{
		Issues:   make([]entity.RepairIssueQuote, 0, len(TopRepairIssues)),
		Unpriced: true,
	}

	for _, issueID := range TopRepairIssues {
		iq := entity.RepairIssueQuote{IssueID: issueID}

		if cheapest, ok := pricing.CheapestRepair(ds, issueID); ok {
			iq.Available = true
			iq.FromPrice = cheapest.Price.Round(0).IntPart()
			iq.Variants = make(map[string]int64)
			for _, rec := range ds.RepairVariants(issueID) {
				label := rec.Variant
				if label == "" {
					label = defaultVariantLabel
				}
				iq.Variants[label] = rec.Price.Round(0).IntPart()
			}
			rq.Unpriced = false
		}

		rq.Issues = append(rq.Issues, iq)
	}

	return rq
}

type seoData struct {
	Device   string
	Location string
	Price    int64
}

// renderSEO injects the same rounded maximum into every language.
func (s *quoteService) renderSEO(device *entity.Device, bq entity.BuybackQuote) map[entity.Language]entity.SEOContent {
	data := seoData{
		Device:   device.DisplayName(),
		Location: s.location,
		Price:    bq.MaxPrice,
	}

	seo := make(map[entity.Language]entity.SEOContent, len(s.templates))
	for _, lang := range entity.Languages() {
		lt := s.templates[lang]
		profile := lang.Profile()

		titleTmpl, descTmpl := lt.title, lt.description
		if bq.Unpriced {
			titleTmpl, descTmpl = lt.unpricedTitle, lt.unpricedDescription
		}

		seo[lang] = entity.SEOContent{
			Title:       s.execute(titleTmpl, data),
			Description: s.execute(descTmpl, data),
			Slug:        pagePath(profile.Code, profile.BuybackService, device.ID),
			RepairSlug:  pagePath(profile.Code, profile.RepairService, device.ID),
		}
	}

	return seo
}

func (s *quoteService) execute(t *template.Template, data seoData) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		s.logger.Error("Failed to render SEO template",
			slog.String("template", t.Name()),
			slog.Any("error", err),
		)

		return data.Device
	}

	return b.String()
}

func pagePath(code, service, deviceID string) string {
	return "/" + code + "/" + service + "/" + deviceID
}
