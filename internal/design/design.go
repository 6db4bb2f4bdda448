// Package design assembles the site-wide theme configuration from the Design
// directory tree. Every sub-reader degrades to its own defaults on any read or
// parse failure; the aggregate DesignData call never fails.
package design

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
	"github.com/gi-os/ShopTemplateSystem/pkg/textkv"
)

// DesignDir is the design root folder name inside the data directory.
const DesignDir = "Design"

const (
	defaultCompanyName = "Shuttle"
	defaultPassword    = "shuttle"

	defaultTagline = "Quality products for your business"
	defaultAbout   = "We provide quality products for businesses."
	defaultFooter  = "© 2026 All rights reserved."

	defaultTitleFont    = "Montserrat"
	defaultBodyFont     = "Inter"
	defaultCornerRadius = 8
	defaultStyleName    = "classic"
)

var defaultColors = domain.Colors{
	Primary:    "#1a1a1a",
	Secondary:  "#ff6600",
	Accent:     "#4a90e2",
	Background: "#ffffff",
	Text:       "#333333",
	TextLight:  "#666666",
	Border:     "#e5e5e5",
	Success:    "#10b981",
}

// logoExts is the probe order for logo files; favicons prefer .ico.
var (
	logoExts    = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}
	faviconExts = []string{".ico", ".png", ".svg"}
)

// Repository reads the design configuration from a data directory.
type Repository struct {
	root string // path of the Design folder
}

func NewRepository(dataDir string) *Repository {
	return &Repository{root: filepath.Join(dataDir, DesignDir)}
}

// readKV loads and parses one Details key-value file. Any failure comes back
// as an empty map so the typed accessors fall through to their defaults.
func (r *Repository) readKV(filename string) map[string]string {
	data, err := os.ReadFile(filepath.Join(r.root, "Details", filename))
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Errorf("design: reading %s: %v", filename, err)
		}
		return map[string]string{}
	}
	return textkv.Parse(string(data))
}

// Colors returns the eight theme tokens, each defaulting independently.
func (r *Repository) Colors() domain.Colors {
	kv := r.readKV("Colors.txt")
	return domain.Colors{
		Primary:    textkv.String(kv, "primary", defaultColors.Primary),
		Secondary:  textkv.String(kv, "secondary", defaultColors.Secondary),
		Accent:     textkv.String(kv, "accent", defaultColors.Accent),
		Background: textkv.String(kv, "background", defaultColors.Background),
		Text:       textkv.String(kv, "text", defaultColors.Text),
		TextLight:  textkv.String(kv, "textLight", defaultColors.TextLight),
		Border:     textkv.String(kv, "border", defaultColors.Border),
		Success:    textkv.String(kv, "success", defaultColors.Success),
	}
}

func (r *Repository) CompanyName() string {
	data, err := os.ReadFile(filepath.Join(r.root, "Details", "CompanyName.txt"))
	if err != nil {
		return defaultCompanyName
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return defaultCompanyName
	}
	return name
}

func (r *Repository) Descriptions() domain.Descriptions {
	kv := r.readKV("Descriptions.txt")
	return domain.Descriptions{
		Tagline: textkv.String(kv, "tagline", defaultTagline),
		About:   textkv.String(kv, "about", defaultAbout),
		Footer:  textkv.String(kv, "footer", defaultFooter),
	}
}

// Fonts returns the font families with a generic fallback appended, plus
// optional stylesheet URLs.
func (r *Repository) Fonts() domain.Fonts {
	kv := r.readKV("Fonts.txt")
	return domain.Fonts{
		TitleFont:    textkv.String(kv, "titleFont", defaultTitleFont) + ", sans-serif",
		BodyFont:     textkv.String(kv, "bodyFont", defaultBodyFont) + ", sans-serif",
		TitleFontURL: textkv.String(kv, "titleFontUrl", ""),
		BodyFontURL:  textkv.String(kv, "bodyFontUrl", ""),
	}
}

func (r *Repository) Style() domain.Style {
	kv := r.readKV("Style.txt")
	radius := textkv.Int(kv, "cornerRadius", defaultCornerRadius)
	if radius < 0 {
		radius = defaultCornerRadius
	}
	return domain.Style{
		CornerRadius: radius,
		StyleName:    textkv.String(kv, "styleName", defaultStyleName),
	}
}

// Password returns the shared storefront password. A deliberately weak fixed
// fallback applies when the file is missing or empty.
func (r *Repository) Password() string {
	data, err := os.ReadFile(filepath.Join(r.root, "Details", "Password.txt"))
	if err != nil {
		return defaultPassword
	}
	password := strings.TrimSpace(string(data))
	if password == "" {
		return defaultPassword
	}
	return password
}

// PasswordConfigured reports whether a Password.txt exists; the access gate
// is only enforced when it does.
func (r *Repository) PasswordConfigured() bool {
	info, err := os.Stat(filepath.Join(r.root, "Details", "Password.txt"))
	return err == nil && !info.IsDir()
}

// LogoPath probes Logos/<name>.<ext> across the extension priority list and
// returns the URL of the first file found, or "".
func (r *Repository) LogoPath(name string) string {
	exts := logoExts
	if name == "favicon" {
		exts = faviconExts
	}
	for _, ext := range exts {
		filename := name + ext
		if _, err := os.Stat(filepath.Join(r.root, "Logos", filename)); err == nil {
			return "/api/images/logos/" + filename
		}
	}
	return ""
}

// LogoFilePath maps a logo filename to its absolute path, for serving.
func (r *Repository) LogoFilePath(filename string) string {
	return filepath.Join(r.root, "Logos", filename)
}

// HeroImages lists the image files at the ShowcasePhotos root,
// filename-sorted.
func (r *Repository) HeroImages() []string {
	dir := filepath.Join(r.root, "ShowcasePhotos")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, "/api/images/showcase/"+name)
	}
	return urls
}

// CollectionShowcaseImages maps collection ids to their override image URL.
// Keys come from stripping each file's extension, so the file
// Collections/<collectionId>.<ext> overrides that collection's card image.
func (r *Repository) CollectionShowcaseImages() map[string]string {
	dir := filepath.Join(r.root, "ShowcasePhotos", "Collections")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return map[string]string{}
	}
	images := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		images[key] = "/api/images/showcase/collections/" + entry.Name()
	}
	return images
}

// ShowcaseFilePath maps a showcase filename to its absolute path. Set
// collection to address the per-collection override folder.
func (r *Repository) ShowcaseFilePath(filename string, collection bool) string {
	if collection {
		return filepath.Join(r.root, "ShowcasePhotos", "Collections", filename)
	}
	return filepath.Join(r.root, "ShowcasePhotos", filename)
}

// DesignData assembles the full configuration. It never fails: every section
// independently falls back to its defaults.
func (r *Repository) DesignData() domain.DesignData {
	return domain.DesignData{
		Colors:                   r.Colors(),
		CompanyName:              r.CompanyName(),
		Descriptions:             r.Descriptions(),
		Fonts:                    r.Fonts(),
		Style:                    r.Style(),
		LogoPath:                 r.LogoPath("logo"),
		LogoWhitePath:            r.LogoPath("logo-white"),
		FaviconPath:              r.LogoPath("favicon"),
		HeroImages:               r.HeroImages(),
		CollectionShowcaseImages: r.CollectionShowcaseImages(),
		FAQ:                      r.FAQ(),
	}
}

func isImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}
