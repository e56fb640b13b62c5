package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

// newTestStrategy builds an initialized strategy whose platform client is the
// given mock.
func newTestStrategy(t *testing.T, objective domain.Objective, api port.PlatformAPI) Strategy {
	t.Helper()
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return api }, nil, []int64{188})
	st, err := factory.Strategy(objective)
	if err != nil {
		t.Fatalf("Strategy(%q) error: %v", objective, err)
	}
	st.Initialize("test-token")
	return st
}

func validAppInstallsRequest() domain.CampaignRequest {
	return domain.CampaignRequest{
		Name:        "Summer promo",
		DailyBudget: 500,
		Creatives:   []domain.CreativeRef{{ID: 101}},
		Title:       "Buy now",
		TrackerURL:  "https://x/y",
	}
}

// TestAppInstallsValidation ensures invalid requests fail before any platform
// call is made. The mock has no expectations, so any remote call would fail
// the test.
func TestAppInstallsValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CampaignRequest)
		field  string
	}{
		{
			name:   "missing tracker url",
			mutate: func(r *domain.CampaignRequest) { r.TrackerURL = "" },
			field:  "tracker_url",
		},
		{
			name:   "no creatives",
			mutate: func(r *domain.CampaignRequest) { r.Creatives = nil },
			field:  "creatives",
		},
		{
			name: "too many creatives",
			mutate: func(r *domain.CampaignRequest) {
				r.Creatives = make([]domain.CreativeRef, 11)
				for i := range r.Creatives {
					r.Creatives[i] = domain.CreativeRef{ID: int64(i + 1)}
				}
			},
			field: "creatives",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := mocks.NewMockPlatformAPI(t)
			st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)

			req := validAppInstallsRequest()
			tc.mutate(&req)

			_, err := st.CreateCampaign(context.Background(), req)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

// TestAppInstallsEndToEnd covers the single-creative case: one ad group with
// the default name, unmodified title and the creative id used for both icon
// and image.
func TestAppInstallsEndToEnd(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)

	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return(nil, nil)
	api.EXPECT().
		CreateURLObject(mock.Anything, mock.AnythingOfType("domain.UrlObject")).
		Return(&domain.UrlObject{ID: 555, URL: "https://x/y"}, nil)

	var submitted domain.AdPlan
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.AnythingOfType("domain.AdPlan")).
		RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
			submitted = plan
			return &port.AdPlanResponse{
				ID:       900,
				AdGroups: []port.CreatedAdGroup{{ID: 901, Banners: []int64{9001}}},
			}, nil
		})

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	result, err := st.CreateCampaign(context.Background(), validAppInstallsRequest())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	if result.CampaignID != 900 {
		t.Fatalf("campaign id: got %d, want 900", result.CampaignID)
	}
	if len(result.AdGroupIDs) != 1 || result.AdGroupIDs[0] != 901 {
		t.Fatalf("ad group ids: got %v", result.AdGroupIDs)
	}
	if len(result.BannerIDs) != 1 || result.BannerIDs[0] != 9001 {
		t.Fatalf("banner ids: got %v", result.BannerIDs)
	}

	if submitted.Objective != "appinstalls" || submitted.Status != "active" {
		t.Fatalf("plan header: %+v", submitted)
	}
	if len(submitted.AdGroups) != 1 {
		t.Fatalf("expected 1 ad group, got %d", len(submitted.AdGroups))
	}

	group := submitted.AdGroups[0]
	if group.Name != "группа 1" {
		t.Errorf("group name: got %q", group.Name)
	}
	if group.PackageID != 1085 || group.BudgetLimitDay != 500 {
		t.Errorf("group attributes: %+v", group)
	}

	banner := group.Banners[0]
	// короткий заголовок уходит без изменений
	if got := banner.Textblocks["title_25"].Text; got != "Buy now" {
		t.Errorf("title: got %q", got)
	}
	if got := banner.Textblocks["cta_apps_full"].Text; got != "install" {
		t.Errorf("cta fallback: got %q", got)
	}
	if banner.Content["icon_256x256"].ID != 101 || banner.Content["image_600x600"].ID != 101 {
		t.Errorf("creative id must back both icon and image: %+v", banner.Content)
	}
	if banner.URLs["primary"].ID != 555 {
		t.Errorf("primary url id: got %d", banner.URLs["primary"].ID)
	}

	targeting := group.Targetings
	if targeting.MobileApps != "not_installed" {
		t.Errorf("mobile apps filter: got %q", targeting.MobileApps)
	}
	if len(targeting.MobileOperationSystems) != len(defaultOSVersions) {
		t.Errorf("os versions: got %v", targeting.MobileOperationSystems)
	}
	if len(targeting.Geo.Regions) != 1 || targeting.Geo.Regions[0] != 188 {
		t.Errorf("default geo: got %v", targeting.Geo.Regions)
	}
	if targeting.Age.AgeList[0] != defaultAgeFrom || targeting.Age.AgeList[len(targeting.Age.AgeList)-1] != defaultAgeTo {
		t.Errorf("default ages: got %v", targeting.Age.AgeList)
	}
}

// TestURLObjectReuse checks that an existing destination matching by exact
// URL or by bundle-id substring is reused instead of creating a duplicate.
func TestURLObjectReuse(t *testing.T) {
	t.Run("exact url match", func(t *testing.T) {
		api := mocks.NewMockPlatformAPI(t)
		api.EXPECT().
			ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
			Return([]domain.UrlObject{
				{ID: 10, URL: "https://other/app"},
				{ID: 11, URL: "https://x/y"},
			}, nil)
		api.EXPECT().
			CreateAdPlan(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
				if got := plan.AdGroups[0].Banners[0].URLs["primary"].ID; got != 11 {
					t.Errorf("expected reused url object 11, got %d", got)
				}
				return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}}}, nil
			})

		st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
		if _, err := st.CreateCampaign(context.Background(), validAppInstallsRequest()); err != nil {
			t.Fatalf("CreateCampaign error: %v", err)
		}
	})

	t.Run("bundle substring match", func(t *testing.T) {
		api := mocks.NewMockPlatformAPI(t)
		api.EXPECT().
			ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
			Return([]domain.UrlObject{
				{ID: 20, URL: "https://tracker.example/go?bundle=com.acme.app"},
			}, nil)
		api.EXPECT().
			CreateAdPlan(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
				if got := plan.AdGroups[0].Banners[0].URLs["primary"].ID; got != 20 {
					t.Errorf("expected reused url object 20, got %d", got)
				}
				return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}}}, nil
			})

		req := validAppInstallsRequest()
		req.BundleID = "com.acme.app"

		st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
		if _, err := st.CreateCampaign(context.Background(), req); err != nil {
			t.Fatalf("CreateCampaign error: %v", err)
		}
	})
}

// TestURLObjectCreatedOnce: первый вызов создаёт URL-объект, второй — с тем
// же трекером — переиспользует его id из обновлённого листинга. Заодно
// проверяет, что стратегия переживает повторные вызовы.
func TestURLObjectCreatedOnce(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)

	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return(nil, nil).
		Once()
	api.EXPECT().
		CreateURLObject(mock.Anything, mock.Anything).
		Return(&domain.UrlObject{ID: 40, URL: "https://x/y"}, nil).
		Once()
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 40, URL: "https://x/y"}}, nil).
		Once()

	var urlIDs []int64
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
			urlIDs = append(urlIDs, plan.AdGroups[0].Banners[0].URLs["primary"].ID)
			return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}}}, nil
		}).
		Times(2)

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	for i := 0; i < 2; i++ {
		if _, err := st.CreateCampaign(context.Background(), validAppInstallsRequest()); err != nil {
			t.Fatalf("call %d: CreateCampaign error: %v", i+1, err)
		}
	}
	if len(urlIDs) != 2 || urlIDs[0] != 40 || urlIDs[1] != 40 {
		t.Fatalf("both campaigns must reference the same url object: %v", urlIDs)
	}
}

// TestReconcileFallback covers the platform omitting ad groups from the
// creation response: exactly one follow-up listing recovers the ids.
func TestReconcileFallback(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		Return(&port.AdPlanResponse{ID: 77}, nil)
	api.EXPECT().
		ListAdGroups(mock.Anything, int64(77), reconcilePageSize).
		Return([]port.CreatedAdGroup{
			{ID: 701, Banners: []int64{7001}},
			{ID: 702, Banners: []int64{7002}},
		}, nil).
		Once()

	req := validAppInstallsRequest()
	req.Creatives = []domain.CreativeRef{{ID: 101}, {ID: 102}}

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	result, err := st.CreateCampaign(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if len(result.AdGroupIDs) != 2 || result.AdGroupIDs[0] != 701 || result.AdGroupIDs[1] != 702 {
		t.Fatalf("ad group ids: got %v", result.AdGroupIDs)
	}
	if len(result.BannerIDs) != 2 {
		t.Fatalf("banner ids: got %v", result.BannerIDs)
	}
}

// TestReconcileEmpty: even the fallback listing may come back empty. The
// campaign exists, so the result degrades to empty id lists instead of an
// error.
func TestReconcileEmpty(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		Return(&port.AdPlanResponse{ID: 77}, nil)
	api.EXPECT().
		ListAdGroups(mock.Anything, int64(77), reconcilePageSize).
		Return(nil, nil)

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	result, err := st.CreateCampaign(context.Background(), validAppInstallsRequest())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if result.CampaignID != 77 || len(result.AdGroupIDs) != 0 || len(result.BannerIDs) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestMissingCampaignID(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		Return(&port.AdPlanResponse{}, nil)

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	_, err := st.CreateCampaign(context.Background(), validAppInstallsRequest())
	if !errors.Is(err, port.ErrMissingCampaignID) {
		t.Fatalf("expected ErrMissingCampaignID, got %v", err)
	}
}

// TestRemoteErrorPassthrough ensures a platform rejection reaches the caller
// as *domain.RemoteError with the message intact.
func TestRemoteErrorPassthrough(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		Return(nil, &domain.RemoteError{Code: "invalid_budget", Message: "budget below minimum"})

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	_, err := st.CreateCampaign(context.Background(), validAppInstallsRequest())

	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Message != "budget below minimum" {
		t.Fatalf("message lost in transit: %q", remoteErr.Message)
	}
}

// TestMultipleCreativesOrder: one group per creative, названия групп идут в
// порядке креативов.
func TestMultipleCreativesOrder(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)

	var submitted domain.AdPlan
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
			submitted = plan
			return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}, {ID: 3}, {ID: 4}}}, nil
		})

	req := validAppInstallsRequest()
	req.Creatives = []domain.CreativeRef{{ID: 101}, {ID: 102}, {ID: 103}}

	st := newTestStrategy(t, domain.ObjectiveAppInstalls, api)
	if _, err := st.CreateCampaign(context.Background(), req); err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	if len(submitted.AdGroups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(submitted.AdGroups))
	}
	for i, want := range []string{"группа 1", "группа 2", "группа 3"} {
		if submitted.AdGroups[i].Name != want {
			t.Errorf("group %d name: got %q, want %q", i, submitted.AdGroups[i].Name, want)
		}
		if got := submitted.AdGroups[i].Banners[0].Content["image_600x600"].ID; got != req.Creatives[i].ID {
			t.Errorf("group %d image: got %d, want %d", i, got, req.Creatives[i].ID)
		}
	}
}

func TestSocialEngagementRequiresPageURL(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	st := newTestStrategy(t, domain.ObjectiveSocialEngagement, api)

	_, err := st.CreateCampaign(context.Background(), domain.CampaignRequest{
		Name:      "community",
		Creatives: []domain.CreativeRef{{ID: 1}},
	})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "page_url" {
		t.Fatalf("expected page_url validation error, got %v", err)
	}
}

// TestSocialEngagementVideoContent: видеокреатив уходит в слот video_portrait
// вместо статичной картинки.
func TestSocialEngagementVideoContent(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "community_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 30, URL: "https://vk.com/acme"}}, nil)

	var submitted domain.AdPlan
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
			submitted = plan
			return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}, {ID: 3}}}, nil
		})

	st := newTestStrategy(t, domain.ObjectiveSocialEngagement, api)
	_, err := st.CreateCampaign(context.Background(), domain.CampaignRequest{
		Name:      "community",
		PageURL:   "https://vk.com/acme",
		Title:     "Join us",
		Creatives: []domain.CreativeRef{{ID: 1, IsVideo: true}, {ID: 2}},
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	video := submitted.AdGroups[0].Banners[0].Content
	if _, ok := video["video_portrait"]; !ok {
		t.Errorf("video creative must use video_portrait slot: %+v", video)
	}
	if _, ok := video["image_600x600"]; ok {
		t.Errorf("video creative must not carry a static image: %+v", video)
	}

	static := submitted.AdGroups[1].Banners[0].Content
	if _, ok := static["image_600x600"]; !ok {
		t.Errorf("static creative must use image_600x600 slot: %+v", static)
	}
}

// TestLeadAdsRejectsVideo: lead-ads package takes images only; the error
// reports which creative offended.
func TestLeadAdsRejectsVideo(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	st := newTestStrategy(t, domain.ObjectiveLeadAds, api)

	_, err := st.CreateCampaign(context.Background(), domain.CampaignRequest{
		Name:       "leads",
		LeadFormID: 42,
		Creatives:  []domain.CreativeRef{{ID: 1}, {ID: 2, IsVideo: true}},
	})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.CreativeIndex != 1 {
		t.Fatalf("expected creative index 1, got %d", vErr.CreativeIndex)
	}
}

// TestLeadAdsBannerShape: баннер ссылается на лид-форму, а не на URL-объект,
// и не вызывает urls.json вовсе.
func TestLeadAdsBannerShape(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)

	var submitted domain.AdPlan
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
			submitted = plan
			return &port.AdPlanResponse{ID: 1, AdGroups: []port.CreatedAdGroup{{ID: 2}}}, nil
		})

	st := newTestStrategy(t, domain.ObjectiveLeadAds, api)
	_, err := st.CreateCampaign(context.Background(), domain.CampaignRequest{
		Name:       "leads",
		LeadFormID: 42,
		Title:      "Get a quote",
		Creatives:  []domain.CreativeRef{{ID: 7}},
	})
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}

	banner := submitted.AdGroups[0].Banners[0]
	if banner.URLs["lead_form"].ID != 42 {
		t.Errorf("lead form reference: %+v", banner.URLs)
	}
	if _, ok := banner.Content["icon_256x256"]; ok {
		t.Errorf("lead ads must not send an icon, the platform takes it from the form")
	}
	if banner.Content["image_600x600"].ID != 7 {
		t.Errorf("image content: %+v", banner.Content)
	}
}
