package domain

import "strings"

// FormatBest lets the extractor pick whatever single format it considers best.
const FormatBest = "best"

// ExitKey is the menu selection reserved for leaving the program.
const ExitKey = "0"

// PlatformConfig describes one supported social-media platform.
type PlatformConfig struct {
	Name             string
	Icon             string
	Examples         []string
	Domains          []string
	FormatPreference string
}

var (
	platformYouTube = &PlatformConfig{
		Name:    "YouTube",
		Icon:    "🎬",
		Domains: []string{"youtube.com", "youtu.be"},
		Examples: []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://www.youtube.com/shorts/xxxxxxxxxxx",
		},
		FormatPreference: "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
	}

	platformInstagram = &PlatformConfig{
		Name:    "Instagram",
		Icon:    "📸",
		Domains: []string{"instagram.com"},
		Examples: []string{
			"https://www.instagram.com/reel/CxxxxxXXXXX/",
			"https://www.instagram.com/p/CxxxxxXXXXX/",
			"https://www.instagram.com/tv/CxxxxxXXXXX/",
		},
		FormatPreference: FormatBest,
	}

	platformFacebook = &PlatformConfig{
		Name:    "Facebook",
		Icon:    "👥",
		Domains: []string{"facebook.com", "fb.watch"},
		Examples: []string{
			"https://www.facebook.com/watch?v=1234567890",
			"https://fb.watch/xxxxxxxxxxx/",
			"https://www.facebook.com/username/videos/1234567890",
		},
		FormatPreference: FormatBest,
	}

	platformTwitter = &PlatformConfig{
		Name:    "Twitter/X",
		Icon:    "🐦",
		Domains: []string{"twitter.com", "x.com"},
		Examples: []string{
			"https://twitter.com/username/status/1234567890",
			"https://x.com/username/status/1234567890",
		},
		FormatPreference: FormatBest,
	}

	platformPinterest = &PlatformConfig{
		Name:    "Pinterest",
		Icon:    "📌",
		Domains: []string{"pinterest.com"},
		Examples: []string{
			"https://www.pinterest.com/pin/1234567890/",
		},
		FormatPreference: FormatBest,
	}
)

// Catalog is an insertion-ordered, read-only mapping from menu selection keys
// to platform descriptors. Selection keys are stable for the process lifetime.
type Catalog struct {
	keys      []string
	platforms map[string]*PlatformConfig
}

// DefaultCatalog returns the catalog of all supported platforms in menu order.
func DefaultCatalog() *Catalog {
	return &Catalog{
		keys: []string{"1", "2", "3", "4", "5"},
		platforms: map[string]*PlatformConfig{
			"1": platformYouTube,
			"2": platformInstagram,
			"3": platformFacebook,
			"4": platformTwitter,
			"5": platformPinterest,
		},
	}
}

// Keys returns the selection keys in menu display order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Get returns the platform registered under the given selection key.
func (c *Catalog) Get(key string) (*PlatformConfig, bool) {
	p, ok := c.platforms[key]
	return p, ok
}

// Detect returns the first platform in catalog order whose domain appears in
// the URL, or nil when none matches. Matching is case-insensitive substring
// containment, not hostname parsing.
func (c *Catalog) Detect(url string) *PlatformConfig {
	lowered := strings.ToLower(url)
	for _, key := range c.keys {
		platform := c.platforms[key]
		for _, domain := range platform.Domains {
			if strings.Contains(lowered, domain) {
				return platform
			}
		}
	}
	return nil
}
