package meta

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// FetchTree busca campanhas, anúncios e criativos da conta.
//
// Só a listagem de campanhas é fatal. Falhas abaixo dela viram notas no nó
// (Errors) e o restante da árvore segue normalmente; por isso nenhuma goroutine
// devolve erro ao grupo e irmãos nunca são cancelados.
func (s *MetaIntegrator) FetchTree(ctx context.Context, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error) {
	logger := log.ForContext(ctx).WithField("account_id", accountID)

	if err := s.throttle.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "list campaigns")
	}

	remoteCampaigns, err := s.Client.GetCampaignsByAccountID(ctx, accountID, s.cfg.Report.CampaignStatuses, s.cfg.Report.CampaignsLimit)
	if err != nil {
		s.observe(ctx, err)
		logger.WithField("error", err.Error()).Error("insights: failed to list campaigns")
		return nil, errors.Wrap(err, "list campaigns")
	}

	campaigns := make([]*domain.Campaign, len(remoteCampaigns))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for i, remote := range remoteCampaigns {
		campaign := &domain.Campaign{
			ID:     remote.ID,
			Name:   remote.Name,
			Status: campaignStatus(remote),
			Ads:    []*domain.Ad{},
		}
		campaigns[i] = campaign

		g.Go(func() error {
			s.fetchCampaign(ctx, campaign, dateRange)
			return nil
		})
	}

	_ = g.Wait()

	logger.WithField("campaigns", len(campaigns)).Debug("insights: campaign tree fetched")

	return campaigns, nil
}

func (s *MetaIntegrator) fetchCampaign(ctx context.Context, campaign *domain.Campaign, dateRange domain.DateRange) {
	logger := log.ForContext(ctx).WithField("campaign_id", campaign.ID)

	if err := s.throttle.Wait(ctx); err != nil {
		campaign.AddError(fmt.Sprintf("campaign skipped: %v", err))
		metrics.IncPartialFailure("campaign")
		return
	}

	var (
		insights    *domain.InsightMetrics
		insightsErr error
		ads         []*domain.Ad
		adsErr      error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		insights, insightsErr = s.fetchCampaignInsights(ctx, campaign.ID, dateRange)
		return nil
	})
	g.Go(func() error {
		ads, adsErr = s.fetchAds(ctx, campaign.ID, dateRange)
		return nil
	})
	_ = g.Wait()

	campaign.Insights = insights
	if insightsErr != nil {
		logger.WithField("error", insightsErr.Error()).Warn("insights: failed to get campaign insights")
		campaign.AddError(fmt.Sprintf("campaign insights unavailable: %v", insightsErr))
		metrics.IncPartialFailure("campaign_insights")
	}

	if adsErr != nil {
		logger.WithField("error", adsErr.Error()).Warn("insights: failed to get campaign ads")
		campaign.Ads = []*domain.Ad{}
		campaign.AddError(fmt.Sprintf("ads unavailable: %v", adsErr))
		metrics.IncPartialFailure("ads")
		return
	}

	campaign.Ads = ads
	s.attachCreatives(ctx, ads)
}

// Campanha sem entrega no período tem métricas zeradas; nil fica reservado para falha
func (s *MetaIntegrator) fetchCampaignInsights(ctx context.Context, campaignID string, dateRange domain.DateRange) (*domain.InsightMetrics, error) {
	insight, err := s.Client.GetCampaignInsights(ctx, campaignID, dateRange)
	if err != nil {
		s.observe(ctx, err)
		return nil, err
	}

	m := FactoryInsightMetrics(ctx, insight)
	return &m, nil
}

func (s *MetaIntegrator) fetchAds(ctx context.Context, campaignID string, dateRange domain.DateRange) ([]*domain.Ad, error) {
	remoteAds, err := s.Client.GetAdsByCampaignID(ctx, campaignID, dateRange, s.cfg.Report.AdsLimit)
	if err != nil {
		s.observe(ctx, err)
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(remoteAds))
	for i := range remoteAds {
		remote := &remoteAds[i]
		insights := FactoryInsightMetrics(ctx, remote.FirstInsight())

		ads = append(ads, &domain.Ad{
			ID:           remote.ID,
			Name:         remote.Name,
			Status:       adStatus(remote),
			ThumbnailURL: s.cfg.Report.PlaceholderImage,
			Images:       []string{},
			Insights:     &insights,
		})
	}

	return ads, nil
}

// attachCreatives busca os criativos apenas dos primeiros anúncios, até o limite configurado
func (s *MetaIntegrator) attachCreatives(ctx context.Context, ads []*domain.Ad) {
	limit := s.cfg.Report.MaxAdsWithCreatives
	if limit < 0 {
		limit = 0
	}
	if limit > len(ads) {
		limit = len(ads)
	}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for _, ad := range ads[:limit] {
		ad := ad
		g.Go(func() error {
			s.fetchCreatives(ctx, ad)
			return nil
		})
	}

	_ = g.Wait()
}

func (s *MetaIntegrator) fetchCreatives(ctx context.Context, ad *domain.Ad) {
	if err := s.throttle.Wait(ctx); err != nil {
		ad.AddError(fmt.Sprintf("creatives skipped: %v", err))
		metrics.IncPartialFailure("creatives")
		return
	}

	creatives, err := s.Client.GetAdCreativesByAdID(ctx, ad.ID)
	if err != nil {
		s.observe(ctx, err)
		log.ForContext(ctx).WithFields(log.Fields{
			"ad_id": ad.ID,
			"error": err.Error(),
		}).Warn("insights: failed to get ad creatives")
		ad.AddError(fmt.Sprintf("creatives unavailable: %v", err))
		metrics.IncPartialFailure("creatives")
		return
	}

	ad.Images = metadomain.ImageURLs(creatives)

	switch {
	case len(ad.Images) > 0:
		ad.ThumbnailURL = ad.Images[0]
	case metadomain.FirstThumbnailURL(creatives) != "":
		ad.ThumbnailURL = metadomain.FirstThumbnailURL(creatives)
	}
}

func (s *MetaIntegrator) concurrency() int {
	if s.cfg.Report.MaxConcurrentRequests < 1 {
		return 1
	}
	return s.cfg.Report.MaxConcurrentRequests
}

func campaignStatus(c metadomain.Campaign) string {
	if c.EffectiveStatus != "" {
		return c.EffectiveStatus
	}
	return c.Status
}

func adStatus(a *metadomain.Ad) string {
	if a.EffectiveStatus != "" {
		return a.EffectiveStatus
	}
	return a.Status
}
