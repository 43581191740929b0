package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-affiliate/internal/metrics"
	"go-affiliate/internal/redirect/domain"
	"go-affiliate/internal/redirect/tracking"

	"go.uber.org/zap"
)

// DefaultFallbackURL is where soft-fallback entry points send unknown offers.
const DefaultFallbackURL = "/"

// EntryPolicy captures how an entry point differs from the others.
type EntryPolicy struct {
	// Name labels logs and metrics.
	Name string

	DefaultSource   string
	DefaultPosition string

	// SoftFallback redirects to the fallback URL instead of returning an
	// error when the offer cannot be resolved.
	SoftFallback bool

	// LegacySubID uses offerId:productId:millis instead of a generated id.
	LegacySubID bool

	// AttachCatalogIDs stores product and merchant ids on the click.
	AttachCatalogIDs bool

	// Params names the tracking parameters appended to the affiliate URL.
	Params func(subID, source, position string) []TrackingParam
}

var (
	// RedirectPolicy serves /redirect/{offerId}.
	RedirectPolicy = EntryPolicy{
		Name:            "redirect",
		DefaultSource:   "web",
		DefaultPosition: "pos1",
		SoftFallback:    true,
		Params: func(subID, source, position string) []TrackingParam {
			return []TrackingParam{
				{Name: "aff_sub", Value: subID},
				{Name: "aff_sub2", Value: source},
				{Name: "aff_sub3", Value: position},
			}
		},
	}

	// ClickPolicy serves /click.
	ClickPolicy = EntryPolicy{
		Name:             "click",
		DefaultSource:    "unknown",
		LegacySubID:      true,
		AttachCatalogIDs: true,
		Params: func(subID, source, _ string) []TrackingParam {
			return []TrackingParam{
				{Name: "subid", Value: subID},
				{Name: "utm_source", Value: source},
			}
		},
	}
)

// RedirectRequest is one inbound tracked redirect.
type RedirectRequest struct {
	OfferID   string
	ProductID string
	Source    string
	Position  string
	ClientIP  string
	UserAgent string
	Referer   string
}

// RedirectResult tells the transport where to send the client.
type RedirectResult struct {
	Location string
	SubID    string
	Fallback bool
	Bot      bool
	Recorded RecordResult
}

// RedirectService resolves an offer, records the click and composes the
// outbound URL.
type RedirectService struct {
	offers      OfferRepository
	recorder    Recorder
	subIDs      SubIDSource
	hasher      IPHasher
	bots        BotDetector
	countries   CountryResolver
	fallbackURL string
	logger      *zap.Logger
	now         func() time.Time
}

// NewRedirectService creates the redirect pipeline. countries may be nil.
func NewRedirectService(
	offers OfferRepository,
	recorder Recorder,
	subIDs SubIDSource,
	hasher IPHasher,
	bots BotDetector,
	countries CountryResolver,
	fallbackURL string,
	logger *zap.Logger,
) *RedirectService {
	if fallbackURL == "" {
		fallbackURL = DefaultFallbackURL
	}
	return &RedirectService{
		offers:      offers,
		recorder:    recorder,
		subIDs:      subIDs,
		hasher:      hasher,
		bots:        bots,
		countries:   countries,
		fallbackURL: fallbackURL,
		logger:      logger,
		now:         time.Now,
	}
}

// Resolve runs the pipeline for one request. With a soft policy it never
// returns an error; a strict policy returns domain.ErrMissingOfferID,
// domain.ErrOfferNotFound, domain.ErrOfferNotRedirectable or a wrapped
// lookup failure.
func (s *RedirectService) Resolve(ctx context.Context, policy EntryPolicy, req RedirectRequest) (*RedirectResult, error) {
	offer, err := s.resolveOffer(ctx, req.OfferID)
	if err != nil {
		if policy.SoftFallback {
			s.logFallback(policy, req.OfferID, err)
			metrics.Redirects.WithLabelValues(policy.Name, "fallback").Inc()
			return &RedirectResult{Location: s.fallbackURL, Fallback: true, Recorded: RecordSkipped}, nil
		}
		metrics.Redirects.WithLabelValues(policy.Name, "rejected").Inc()
		return nil, err
	}

	source := valueOr(req.Source, policy.DefaultSource)
	position := valueOr(req.Position, policy.DefaultPosition)
	productID := valueOr(req.ProductID, offer.ProductID)

	var subID string
	if policy.LegacySubID {
		subID = tracking.LegacySubID(offer.ID, productID, s.now())
	} else {
		subID = s.subIDs.Generate(offer.ID, source, position)
	}

	result := &RedirectResult{
		SubID:    subID,
		Bot:      s.bots.IsBot(req.UserAgent),
		Recorded: RecordSkipped,
	}

	if !result.Bot {
		click := &domain.Click{
			OfferID:   offer.ID,
			SubID:     subID,
			IPHash:    s.hasher.Hash(req.ClientIP),
			UserAgent: domain.Truncate(req.UserAgent, domain.MaxHeaderLength),
			Referer:   domain.Truncate(req.Referer, domain.MaxHeaderLength),
		}
		if policy.AttachCatalogIDs {
			merchantID := offer.MerchantID
			click.ProductID = &productID
			click.MerchantID = &merchantID
		}
		if s.countries != nil {
			click.Country = s.countries.Country(req.ClientIP)
		}
		result.Recorded = s.recorder.Record(ctx, click)
	}

	result.Location = ComposeRedirectURL(*offer.AffiliateURL, policy.Params(subID, source, position))

	metrics.Redirects.WithLabelValues(policy.Name, "redirected").Inc()
	return result, nil
}

func (s *RedirectService) resolveOffer(ctx context.Context, offerID string) (*domain.Offer, error) {
	if offerID == "" {
		return nil, domain.ErrMissingOfferID
	}

	offer, err := s.offers.FindOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find offer %q: %w", offerID, err)
	}

	if !offer.Redirectable() {
		return nil, domain.ErrOfferNotRedirectable
	}
	return offer, nil
}

func (s *RedirectService) logFallback(policy EntryPolicy, offerID string, err error) {
	fields := []zap.Field{
		zap.String("entry", policy.Name),
		zap.String("offer_id", offerID),
		zap.Error(err),
	}
	switch {
	case errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrOfferNotRedirectable),
		errors.Is(err, domain.ErrMissingOfferID):
		s.logger.Info("offer not redirectable, using fallback", fields...)
	default:
		s.logger.Error("offer lookup failed, using fallback", fields...)
	}
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
