// Package config resolves site-wide identity and server settings from the
// environment. Defaults are hard-coded so a zero-config boot still yields a
// usable identity. Once loaded, configuration is read-only; the derivation
// helpers are pure functions of the loaded snapshot.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"wayfield.org/wayfield-web/internal/seo"
)

// Config holds runtime configuration for the Wayfield web server.
type Config struct {
	// Server settings
	Port    string `env:"WAYFIELD_WEB_PORT" envDefault:"8080"`
	DevMode bool   `env:"WAYFIELD_WEB_DEV" envDefault:"false"`

	// Site identity
	SiteURL         string   `env:"WAYFIELD_WEB_SITE_URL" envDefault:"https://wayfield.org"`
	SiteName        string   `env:"WAYFIELD_WEB_SITE_NAME" envDefault:"Wayfield"`
	SiteDescription string   `env:"WAYFIELD_WEB_SITE_DESCRIPTION" envDefault:"Slow travel stories, field notes, and destination guides."`
	Language        string   `env:"WAYFIELD_WEB_LANG" envDefault:"en"`
	LogoPath        string   `env:"WAYFIELD_WEB_LOGO_PATH" envDefault:"/assets/img/logo.png"`
	LogoWidth       int      `env:"WAYFIELD_WEB_LOGO_WIDTH" envDefault:"512"`
	LogoHeight      int      `env:"WAYFIELD_WEB_LOGO_HEIGHT" envDefault:"512"`
	SocialLinks     []string `env:"WAYFIELD_WEB_SOCIAL_LINKS" envSeparator:"," envDefault:"https://www.instagram.com/wayfield,https://www.youtube.com/@wayfield"`
	DefaultAuthor   string   `env:"WAYFIELD_WEB_DEFAULT_AUTHOR" envDefault:"Wayfield Editors"`
	ContactEmail    string   `env:"WAYFIELD_WEB_CONTACT_EMAIL" envDefault:"hello@wayfield.org"`

	// SearchEnabled gates the WebSite SearchAction schema and the /search
	// route. On by default for crawler compatibility.
	SearchEnabled bool `env:"WAYFIELD_WEB_SEARCH_ENABLED" envDefault:"true"`

	// Content sources
	CMSBaseURL   string `env:"WAYFIELD_WEB_CMS_URL"`
	ContentDir   string `env:"WAYFIELD_WEB_CONTENT_DIR" envDefault:"content"`
	TemplatesDir string `env:"WAYFIELD_WEB_TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"WAYFIELD_WEB_PUBLIC_DIR" envDefault:"public"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// Site derives the WebSite builder input, applying non-zero override fields
// on top of the configured identity.
func (c *Config) Site(overrides ...SiteOverrides) seo.SiteInput {
	site := seo.SiteInput{
		Name:          c.SiteName,
		URL:           c.SiteURL,
		Description:   c.SiteDescription,
		Language:      c.Language,
		SearchEnabled: c.SearchEnabled,
	}
	for _, o := range overrides {
		if o.Name != "" {
			site.Name = o.Name
		}
		if o.URL != "" {
			site.URL = o.URL
		}
		if o.Description != "" {
			site.Description = o.Description
		}
		if o.Language != "" {
			site.Language = o.Language
		}
	}
	return site
}

// Organization derives the Organization builder input the same way.
func (c *Config) Organization(overrides ...OrganizationOverrides) seo.OrganizationInput {
	org := seo.OrganizationInput{
		Name: c.SiteName,
		URL:  c.SiteURL,
		Logo: seo.ImageMeta{
			URL:    c.LogoPath,
			Width:  c.LogoWidth,
			Height: c.LogoHeight,
		},
		SameAs:       append([]string(nil), c.SocialLinks...),
		ContactEmail: c.ContactEmail,
	}
	for _, o := range overrides {
		if o.Name != "" {
			org.Name = o.Name
		}
		if o.URL != "" {
			org.URL = o.URL
		}
		if o.Logo != nil {
			org.Logo = *o.Logo
		}
		if o.SameAs != nil {
			org.SameAs = append([]string(nil), o.SameAs...)
		}
		if o.ContactEmail != "" {
			org.ContactEmail = o.ContactEmail
		}
	}
	return org
}

// SiteOverrides narrows which identity fields a caller may replace. Zero
// values leave the configured default in place.
type SiteOverrides struct {
	Name        string
	URL         string
	Description string
	Language    string
}

// OrganizationOverrides mirrors SiteOverrides for the Organization input.
type OrganizationOverrides struct {
	Name         string
	URL          string
	Logo         *seo.ImageMeta
	SameAs       []string
	ContactEmail string
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
