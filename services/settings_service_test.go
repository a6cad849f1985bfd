package services

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	acme   = "owner@acme.test"
	globex = "owner@globex.test"
)

func validPolicy(privacy string) PolicyInput {
	return PolicyInput{PrivacyPolicy: ptr(privacy), TermsConditions: ptr("terms")}
}

func TestSettings_TenantIsolation(t *testing.T) {
	f := newFixture(t)

	_, err := f.policy.Upsert(f.ctx, acme, validPolicy("acme privacy"))
	require.NoError(t, err)
	_, err = f.policy.Upsert(f.ctx, globex, validPolicy("globex privacy"))
	require.NoError(t, err)

	got, err := f.policy.Get(f.ctx, acme)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme privacy", got.PrivacyPolicy)
	assert.Equal(t, acme, got.OrgMail)

	none, err := f.policy.Get(f.ctx, "nobody@initech.test")
	require.NoError(t, err)
	assert.Nil(t, none, "absent settings are not an error")
}

func TestSettings_SequentialUpsertConverges(t *testing.T) {
	f := newFixture(t)

	first, err := f.policy.Upsert(f.ctx, acme, validPolicy("v1"))
	require.NoError(t, err)
	second, err := f.policy.Upsert(f.ctx, acme, PolicyInput{
		PrivacyPolicy:   ptr("v2"),
		TermsConditions: ptr("terms v2"),
		RefundPolicy:    ptr("30 days"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "the row is updated in place")
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

	var count int64
	require.NoError(t, f.db.Model(&models.PolicyDetailsSetting{}).Where("org_mail = ?", acme).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := f.policy.Get(f.ctx, acme)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.PrivacyPolicy)
	assert.Equal(t, "terms v2", got.TermsConditions)
	assert.Equal(t, "30 days", got.RefundPolicy)
}

// The test database has a single connection, so these upserts queue up
// rather than race. One row per tenant under real concurrency comes from the
// unique org_mail index, asserted at the end.
func TestSettings_OverlappingUpsertsConverge(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.policy.Upsert(f.ctx, acme, validPolicy("racing"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var count int64
	require.NoError(t, f.db.Model(&models.PolicyDetailsSetting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	dup := &models.PolicyDetailsSetting{PrivacyPolicy: "p", TermsConditions: "t"}
	dup.SetTenant(acme)
	assert.Error(t, f.db.Create(dup).Error, "org_mail is unique per category")
}

func TestHeaderFooter_RoundTrip(t *testing.T) {
	f := newFixture(t)

	blocks := []models.CountryBlock{{Title: "US:", Address: "1 Main St"}}
	links := []models.FooterLink{{ID: "faq", Label: "FAQ", URL: "/faq"}, {Label: "Blog", URL: "/blog"}}
	saved, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{
		FooterCopyright: ptr("© 2025 Acme"),
		CountryBlocks:   &blocks,
		FooterLinks:     &links,
	})
	require.NoError(t, err)

	got, err := f.headerFooter.Get(f.ctx, acme)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "© 2025 Acme", got.FooterCopyright)

	require.Len(t, got.CountryBlocks, 1)
	assert.Equal(t, "US:", got.CountryBlocks[0].Title)
	assert.Equal(t, "1 Main St", got.CountryBlocks[0].Address)
	assert.NotEmpty(t, got.CountryBlocks[0].ID, "missing ids are assigned")

	require.Len(t, got.FooterLinks, 2)
	assert.Equal(t, "faq", got.FooterLinks[0].ID, "caller ids are kept")
	assert.Equal(t, "Blog", got.FooterLinks[1].Label)

	assert.NotNil(t, got.NavIcons, "unset lists are stored as empty lists")
	assert.Empty(t, got.NavIcons)
}

func TestHeaderFooter_MissingListsArePreserved(t *testing.T) {
	f := newFixture(t)

	icons := []models.NavIcon{{Label: "Home", Link: "/"}}
	first, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{
		FooterCopyright: ptr("© Acme"),
		NavIcons:        &icons,
	})
	require.NoError(t, err)

	second, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{
		FooterDescription: ptr("We sell anvils"),
	})
	require.NoError(t, err)

	require.Len(t, second.NavIcons, 1)
	assert.Equal(t, first.NavIcons[0].ID, second.NavIcons[0].ID)
	assert.Equal(t, "© Acme", second.FooterCopyright)
	assert.Equal(t, "We sell anvils", second.FooterDescription)
}

func TestHeaderFooter_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   HeaderFooterInput
		msg  string
	}{
		{
			name: "copyright required",
			in:   HeaderFooterInput{FooterDescription: ptr("x")},
			msg:  "Footer_Copyright is required",
		},
		{
			name: "nav icon without label",
			in:   HeaderFooterInput{FooterCopyright: ptr("©"), NavIcons: &[]models.NavIcon{{Link: "/"}}},
			msg:  "Nav_Icons[0]: label is required",
		},
		{
			name: "duplicate ids",
			in: HeaderFooterInput{FooterCopyright: ptr("©"), SocialIcons: &[]models.SocialIcon{
				{ID: "x", Platform: "x", URL: "u"}, {ID: "x", Platform: "y", URL: "v"},
			}},
			msg: "duplicate id",
		},
		{
			name: "upload for missing item",
			in: HeaderFooterInput{
				FooterCopyright: ptr("©"),
				NavIcons:        &[]models.NavIcon{{Label: "Home"}},
				NavIconImages:   map[int]string{3: "http://x/a.png"},
			},
			msg: "no item at index 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.headerFooter.Upsert(f.ctx, acme, tt.in)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.msg)

			got, err := f.headerFooter.Get(f.ctx, acme)
			require.NoError(t, err)
			assert.Nil(t, got, "nothing is written on validation failure")
		})
	}
}

func TestHeaderFooter_ReplacingLogoDeletesOldFile(t *testing.T) {
	f := newFixture(t)

	oldURL := f.stage(t, acme, "navbarLogo", "logo-v1.png")
	_, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{FooterCopyright: ptr("©"), NavbarLogo: &oldURL})
	require.NoError(t, err)

	newURL := f.stage(t, acme, "navbarLogo", "logo-v2.png")
	_, err = f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{NavbarLogo: &newURL})
	require.NoError(t, err)

	got, err := f.headerFooter.Get(f.ctx, acme)
	require.NoError(t, err)
	assert.Equal(t, newURL, got.NavbarLogo)
	assert.NotEqual(t, oldURL, newURL)

	_, statErr := os.Stat(filepath.Join(f.dir, storage.KeyFromURL(oldURL)))
	assert.True(t, os.IsNotExist(statErr), "replaced file is removed")
	_, statErr = os.Stat(filepath.Join(f.dir, storage.KeyFromURL(newURL)))
	assert.NoError(t, statErr)

	var assets []models.UploadedAsset
	require.NoError(t, f.db.Find(&assets).Error)
	require.Len(t, assets, 1)
	assert.Equal(t, newURL, assets[0].URL)
	assert.Equal(t, models.AssetCommitted, assets[0].State)
}

func TestSettings_FileURLBelongsToOneField(t *testing.T) {
	f := newFixture(t)

	logo := f.stage(t, acme, "navbarLogo", "logo.png")
	_, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{FooterCopyright: ptr("©"), NavbarLogo: &logo})
	require.NoError(t, err)

	foreign := f.stage(t, globex, "aboutImage", "globex.png")
	rejected := []struct {
		name string
		in   AboutUsInput
		msg  string
	}{
		{"committed file of another record", AboutUsInput{AboutImage: &logo}, "not an upload of this request"},
		{"pending upload of another tenant", AboutUsInput{AboutImage: &foreign}, "not an upload of this request"},
		{"url that was never uploaded", AboutUsInput{WorkingItems: &[]models.WorkingItem{
			{Title: "Pick", Image: "http://cdn.test/pick.png"},
		}}, "not an upload of this request"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.AboutTitle = ptr("About")
			_, err := f.aboutUs.Upsert(f.ctx, acme, tt.in)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	got, err := f.aboutUs.Get(f.ctx, acme)
	require.NoError(t, err)
	assert.Nil(t, got)

	twice := f.stage(t, acme, "navIconImage_0", "cart.svg")
	icons := []models.NavIcon{{Label: "Cart"}}
	_, err = f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{
		NavbarLogo:    &twice,
		NavIcons:      &icons,
		NavIconImages: map[int]string{0: twice},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one field")

	// the stored value can be sent back unchanged
	saved, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{NavbarLogo: &logo, FooterDescription: ptr("hi")})
	require.NoError(t, err)
	assert.Equal(t, logo, saved.NavbarLogo)

	replacement := f.stage(t, acme, "navbarLogo", "logo-v2.png")
	_, err = f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{NavbarLogo: &replacement})
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(f.dir, storage.KeyFromURL(foreign)))
	assert.NoError(t, statErr, "another tenant's upload is untouched")
}

func TestHeaderFooter_NavIconUploadSplicedByIndex(t *testing.T) {
	f := newFixture(t)

	iconURL := f.stage(t, acme, "navIconImage_1", "cart.svg")
	icons := []models.NavIcon{{Label: "Home"}, {Label: "Cart"}}
	saved, err := f.headerFooter.Upsert(f.ctx, acme, HeaderFooterInput{
		FooterCopyright: ptr("©"),
		NavIcons:        &icons,
		NavIconImages:   map[int]string{1: iconURL},
	})
	require.NoError(t, err)
	assert.Empty(t, saved.NavIcons[0].IconImageURL)
	assert.Equal(t, iconURL, saved.NavIcons[1].IconImageURL)
	assert.Empty(t, icons[1].IconImageURL, "caller input is not modified")
}

func TestHomePage_HeroImageCount(t *testing.T) {
	f := newFixture(t)

	two := []string{f.stage(t, acme, "heroImages", "a.jpg"), f.stage(t, acme, "heroImages", "b.jpg")}
	_, err := f.homePage.Upsert(f.ctx, acme, HomePageInput{HeroTitle: ptr("Sale"), NewHeroImages: two})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Contains(t, err.Error(), "between 3 and 10")

	three := append(two, f.stage(t, acme, "heroImages", "c.jpg"))
	saved, err := f.homePage.Upsert(f.ctx, acme, HomePageInput{HeroTitle: ptr("Sale"), NewHeroImages: three})
	require.NoError(t, err)
	require.Len(t, saved.HeroImages, 3)
	for _, url := range saved.HeroImages {
		assert.Contains(t, url, uploadBase+"/")
	}
}

func TestHomePage_KeepAndAppendHeroImages(t *testing.T) {
	f := newFixture(t)

	initial := []string{
		f.stage(t, acme, "heroImages", "a.jpg"),
		f.stage(t, acme, "heroImages", "b.jpg"),
		f.stage(t, acme, "heroImages", "c.jpg"),
	}
	_, err := f.homePage.Upsert(f.ctx, acme, HomePageInput{HeroTitle: ptr("Sale"), NewHeroImages: initial})
	require.NoError(t, err)

	added := f.stage(t, acme, "heroImages", "d.jpg")
	keep := []string{initial[2], initial[0]}
	saved, err := f.homePage.Upsert(f.ctx, acme, HomePageInput{KeepHeroImages: &keep, NewHeroImages: []string{added}})
	require.NoError(t, err)
	assert.Equal(t, []string{initial[2], initial[0], added}, []string(saved.HeroImages))

	_, statErr := os.Stat(filepath.Join(f.dir, storage.KeyFromURL(initial[1])))
	assert.True(t, os.IsNotExist(statErr), "dropped hero image is removed")

	foreign := []string{initial[0], initial[2], "http://evil.test/x.jpg"}
	_, err = f.homePage.Upsert(f.ctx, acme, HomePageInput{KeepHeroImages: &foreign})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not one of the stored hero images")
}

func TestAboutUs_RemoveItemByID(t *testing.T) {
	f := newFixture(t)

	stats := []models.Statistic{
		{Value: "10", Label: "Years"},
		{Value: "5k", Label: "Customers"},
		{Value: "99", Suffix: "%", Label: "Happy"},
	}
	in := AboutUsInput{AboutTitle: ptr("About"), Statistics: &stats}
	acmeSaved, err := f.aboutUs.Upsert(f.ctx, acme, in)
	require.NoError(t, err)
	globexSaved, err := f.aboutUs.Upsert(f.ctx, globex, in)
	require.NoError(t, err)

	removed := acmeSaved.Statistics[1].ID
	after, err := f.aboutUs.RemoveItem(f.ctx, acme, ListStatistics, removed)
	require.NoError(t, err)
	require.Len(t, after.Statistics, 2)
	assert.Equal(t, acmeSaved.Statistics[0].ID, after.Statistics[0].ID)
	assert.Equal(t, acmeSaved.Statistics[2].ID, after.Statistics[1].ID)
	assert.Equal(t, "Happy", after.Statistics[1].Label)

	other, err := f.aboutUs.Get(f.ctx, globex)
	require.NoError(t, err)
	assert.Len(t, other.Statistics, 3, "other tenants are untouched")
	assert.Equal(t, globexSaved.Statistics[1].ID, other.Statistics[1].ID)

	_, err = f.aboutUs.RemoveItem(f.ctx, acme, ListStatistics, removed)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	_, err = f.aboutUs.RemoveItem(f.ctx, acme, "bogus", removed)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	_, err = f.aboutUs.RemoveItem(f.ctx, "new@tenant.test", ListStatistics, removed)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestAboutUs_RemovingWorkingItemOrphansItsImage(t *testing.T) {
	f := newFixture(t)

	img := f.stage(t, acme, "workingItemImage_0", "step.png")
	items := []models.WorkingItem{{Title: "Pick"}, {Title: "Pack"}}
	saved, err := f.aboutUs.Upsert(f.ctx, acme, AboutUsInput{
		AboutTitle:        ptr("About"),
		WorkingItems:      &items,
		WorkingItemImages: map[int]string{0: img},
	})
	require.NoError(t, err)
	require.Equal(t, img, saved.WorkingItems[0].Image)

	_, err = f.aboutUs.RemoveItem(f.ctx, acme, ListWorkingItems, saved.WorkingItems[0].ID)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(f.dir, storage.KeyFromURL(img)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSettings_WritesAdminLog(t *testing.T) {
	f := newFixture(t)

	_, err := f.policy.Upsert(f.ctx, acme, validPolicy("v1"))
	require.NoError(t, err)
	_, err = f.policy.Upsert(f.ctx, acme, validPolicy("v2"))
	require.NoError(t, err)

	var logs []models.AdminLog
	require.NoError(t, f.db.Where("org_mail = ?", acme).Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AdminActionCreate, logs[0].Action)
	assert.Equal(t, models.AdminActionUpdate, logs[1].Action)
	assert.Equal(t, string(models.CategoryPolicyDetails), logs[1].Category)
}

func TestBuildPolicy_DoesNotTouchBase(t *testing.T) {
	base := &models.PolicyDetailsSetting{PrivacyPolicy: "old", TermsConditions: "t"}
	next, err := BuildPolicy(base, PolicyInput{PrivacyPolicy: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", next.PrivacyPolicy)
	assert.Equal(t, "old", base.PrivacyPolicy)

	_, err = BuildPolicy(nil, PolicyInput{PrivacyPolicy: ptr("p")})
	assert.ErrorContains(t, err, "Terms_Conditions is required")
}
