package config

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/0xb0b1/academy/i18n"
)

// Site holds the academy identity shown in the layout and footer.
type Site struct {
	Name    string            `toml:"name"`
	URL     string            `toml:"url"`
	Email   string            `toml:"email"`
	Phone   string            `toml:"phone"`
	Address string            `toml:"address"`
	Tagline map[string]string `toml:"tagline"`
	Social  []SocialLink      `toml:"social"`
}

// SocialLink is a footer link to a social network profile.
type SocialLink struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// TaglineIn returns the tagline for l, with the usual locale fallback.
func (s Site) TaglineIn(l i18n.Locale) string {
	text := make(i18n.Text, len(s.Tagline))
	for code, v := range s.Tagline {
		if loc, ok := i18n.Parse(code); ok {
			text[loc] = v
		}
	}
	return text.In(l)
}

// DefaultSite returns the built-in site identity.
func DefaultSite() Site {
	return Site{
		Name:    "Horizon Academy",
		URL:     "http://localhost:8080",
		Email:   "contact@horizon-academy.ma",
		Phone:   "+212 5 22 00 00 00",
		Address: "12 boulevard d'Anfa, Casablanca",
		Tagline: map[string]string{
			"fr": "Formation professionnelle",
			"ar": "التكوين المهني",
			"en": "Vocational training",
		},
		Social: []SocialLink{
			{Name: "LinkedIn", URL: "https://www.linkedin.com/"},
			{Name: "Instagram", URL: "https://www.instagram.com/"},
		},
	}
}

// LoadSite reads the site identity from path. A missing or invalid file
// yields DefaultSite; fields left empty in the file keep their default.
func LoadSite(path string) Site {
	def := DefaultSite()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: read site config %s: %v", path, err)
		}
		return def
	}

	var site Site
	if _, err := toml.Decode(string(data), &site); err != nil {
		log.Printf("Warning: parse site config %s: %v", path, err)
		return def
	}

	if site.Name == "" {
		site.Name = def.Name
	}
	if site.URL == "" {
		site.URL = def.URL
	}
	if site.Email == "" {
		site.Email = def.Email
	}
	if site.Phone == "" {
		site.Phone = def.Phone
	}
	if site.Address == "" {
		site.Address = def.Address
	}
	if len(site.Tagline) == 0 {
		site.Tagline = def.Tagline
	}
	if site.Social == nil {
		site.Social = def.Social
	}
	return site
}
