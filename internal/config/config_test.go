package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfield.org/wayfield-web/internal/seo"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err, "zero-config load must succeed")

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://wayfield.org", cfg.SiteURL)
	assert.Equal(t, "Wayfield", cfg.SiteName)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.SearchEnabled)
	assert.NotEmpty(t, cfg.SocialLinks)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WAYFIELD_WEB_SITE_URL", "https://staging.wayfield.org")
	t.Setenv("WAYFIELD_WEB_SEARCH_ENABLED", "false")
	t.Setenv("WAYFIELD_WEB_SOCIAL_LINKS", "https://a.test,https://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.wayfield.org", cfg.SiteURL)
	assert.False(t, cfg.SearchEnabled)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.SocialLinks)
}

func TestSiteOverrideMerge(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	base := cfg.Site()
	assert.Equal(t, cfg.SiteName, base.Name)

	merged := cfg.Site(SiteOverrides{Language: "fr"})
	assert.Equal(t, "fr", merged.Language)
	assert.Equal(t, base.Name, merged.Name, "zero-value override keeps the default")
	assert.Equal(t, base.URL, merged.URL)
}

func TestOrganizationOverrideMerge(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	base := cfg.Organization()
	assert.Equal(t, cfg.ContactEmail, base.ContactEmail)
	assert.Equal(t, cfg.LogoWidth, base.Logo.Width)

	logo := &seo.ImageMeta{URL: "/alt-logo.png", Width: 128, Height: 128}
	merged := cfg.Organization(OrganizationOverrides{
		Name: "Wayfield Guides",
		Logo: logo,
	})
	assert.Equal(t, "Wayfield Guides", merged.Name)
	assert.Equal(t, *logo, merged.Logo)
	assert.Equal(t, base.URL, merged.URL)
	assert.Equal(t, base.SameAs, merged.SameAs)
}

func TestOrganizationCopiesSlices(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	a := cfg.Organization()
	b := cfg.Organization()
	require.NotEmpty(t, a.SameAs)
	a.SameAs[0] = "mutated"
	assert.NotEqual(t, a.SameAs[0], b.SameAs[0], "each derivation gets its own slice")
}
