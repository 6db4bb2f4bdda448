package domain

// Colors holds the eight named theme tokens. Every field has a baked-in
// default applied independently when the source key is missing.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	TextLight  string `json:"textLight"`
	Border     string `json:"border"`
	Success    string `json:"success"`
}

// Descriptions carries the site copy blocks.
type Descriptions struct {
	Tagline string `json:"tagline"`
	About   string `json:"about"`
	Footer  string `json:"footer"`
}

// Fonts carries font family names (already suffixed with a generic fallback)
// and optional stylesheet URLs.
type Fonts struct {
	TitleFont    string `json:"titleFont"`
	BodyFont     string `json:"bodyFont"`
	TitleFontURL string `json:"titleFontUrl,omitempty"`
	BodyFontURL  string `json:"bodyFontUrl,omitempty"`
}

// Style carries the layout tokens.
type Style struct {
	CornerRadius int    `json:"cornerRadius"` // px
	StyleName    string `json:"styleName"`
}

// FAQEntry is one question/answer pair. Answers may span multiple paragraphs;
// internal newlines are preserved.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DesignData is the aggregate theme configuration, rebuilt per load. Assembly
// never fails: each section independently falls back to its defaults.
type DesignData struct {
	Colors                   Colors            `json:"colors"`
	CompanyName              string            `json:"companyName"`
	Descriptions             Descriptions      `json:"descriptions"`
	Fonts                    Fonts             `json:"fonts"`
	Style                    Style             `json:"style"`
	LogoPath                 string            `json:"logoPath,omitempty"`
	LogoWhitePath            string            `json:"logoWhitePath,omitempty"`
	FaviconPath              string            `json:"faviconPath,omitempty"`
	HeroImages               []string          `json:"heroImages"`
	CollectionShowcaseImages map[string]string `json:"collectionShowcaseImages"`
	FAQ                      []FAQEntry        `json:"faq"`
}
