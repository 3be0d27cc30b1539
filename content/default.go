package content

// 调色板中的颜色名。
const (
	ColorGreen         = "green"
	ColorGreenDark     = "green-dark"
	ColorGreenLight    = "green-light"
	ColorGreenBG       = "green-bg"
	ColorTextDark      = "text-dark"
	ColorTextMuted     = "text-muted"
	ColorTextLight     = "text-light"
	ColorPageBG        = "page-bg"
	ColorBorder        = "border"
	ColorWhite         = "white"
	ColorWarmBG        = "warm-bg"
	ColorMist          = "mist"
	ColorProblemBG     = "problem-bg"
	ColorProblemBorder = "problem-border"
	ColorProblemLead   = "problem-lead"
	ColorProblemText   = "problem-text"
	ColorStepLine      = "step-line"
	ColorQuoteText     = "quote-text"
	ColorCredentialsBG = "credentials-bg"
)

// DefaultPalette 返回默认配色（每次返回新的 map）。
func DefaultPalette() Palette {
	return Palette{
		ColorGreen:         "#6B8F71",
		ColorGreenDark:     "#5A7D60",
		ColorGreenLight:    "#E8F5E9",
		ColorGreenBG:       "#F4F9F5",
		ColorTextDark:      "#1C1C1C",
		ColorTextMuted:     "#666666",
		ColorTextLight:     "#888888",
		ColorPageBG:        "#FAFAF8",
		ColorBorder:        "#E8E6E1",
		ColorWhite:         "#FFFFFF",
		ColorWarmBG:        "#F9FBF5",
		ColorMist:          "#D4E6D6",
		ColorProblemBG:     "#FFF8F0",
		ColorProblemBorder: "#E8D5C0",
		ColorProblemLead:   "#8B6914",
		ColorProblemText:   "#7A5F2A",
		ColorStepLine:      "#D0DDD2",
		ColorQuoteText:     "#555555",
		ColorCredentialsBG: "#F5F5F3",
	}
}

// DefaultPage 返回 US Letter 页面与默认边距。
func DefaultPage() Page {
	return Page{
		Size:         "letter",
		MarginTop:    "36pt",
		MarginRight:  "36pt",
		MarginBottom: "28pt",
		MarginLeft:   "36pt",
	}
}

// Default 返回内置的 Lighten AI one-pager 文案。
func Default() *Content {
	return &Content{
		Meta: Meta{
			Title:    "Lighten AI — Fractional AI Officer for Shopify Brands",
			Author:   "Robert Berto Mill",
			Subject:  "Fractional AI officer services for Shopify brands",
			Creator:  "onepager",
			Keywords: []string{"shopify", "ai", "automation"},
		},
		Page:    DefaultPage(),
		Palette: DefaultPalette(),
		Header: Header{
			Brand:   "Lighten AI",
			Tagline: "Fractional AI Officer for Shopify Brands",
			Contact: `Robert "Berto" — Founder`,
			ContactLines: []string{
				"Toronto, ON  |  berto@lightenai.co",
				"lightenai.co  |  linkedin.com/in/bertomill",
			},
		},
		Hero: Hero{
			Badge:    "Built for Shopify Brand Founders",
			Headline: "Scale Your Shopify Store With AI.",
			Accent:   "Without Scaling Your Team.",
			Body:     "I embed as your fractional AI officer and build AI-powered systems — content engines, customer support bots, marketing automation, and operations intelligence — all custom-built for your Shopify store. You grow revenue without growing headcount.",
		},
		Stats: []Figure{
			{Value: "200+", Label: "AI Systems Built"},
			{Value: "3x", Label: "Content Output"},
			{Value: "70%", Label: "Less Production Time"},
			{Value: "$0", Label: "New Hires Needed"},
		},
		Problem: Problem{
			Lead: "Sound familiar?",
			Body: "Sound familiar? You’re writing product descriptions one at a time. Customer support tickets pile up overnight. Your marketing feels inconsistent because nobody has time. You tried ChatGPT but everything sounds generic. You need a system — not another tool to figure out.",
		},
		Systems: Systems{
			Title: "The Four AI Systems I Build For Your Store",
			Items: []System{
				{
					Title:       "Content Engine",
					Description: "AI generates product descriptions, collection pages, email flows, and social content — all in your brand voice. Launch faster, list more, rank higher.",
					Flow:        "DATA → BRAND VOICE AI → DESCRIPTIONS + SEO + EMAILS + SOCIAL",
				},
				{
					Title:       "Customer Support AI",
					Description: "Smart chatbots handle FAQs, order status, returns, and sizing questions 24/7. Your team focuses on complex issues while AI handles the volume.",
					Flow:        "QUERY → AI TRIAGE → INSTANT ANSWER OR ESCALATE",
				},
				{
					Title:       "Marketing Automation",
					Description: "AI-powered ad copy, SEO optimization, campaign automation, and personalization. Every customer gets the right message at the right time.",
					Flow:        "AUDIENCE → AI COPY + TARGETING → PERSONALIZED CAMPAIGNS",
				},
				{
					Title:       "Operations Intelligence",
					Description: "Inventory forecasting, order automation, and sales analytics. Make data-driven decisions without hiring a data team.",
					Flow:        "STORE DATA → AI ANALYSIS → FORECASTS + ALERTS + INSIGHTS",
				},
			},
		},
		Steps: Steps{
			Title: "How It Works",
			Items: []Step{
				{Title: "Store Audit", Description: "I map your workflows, identify bottlenecks, and find where AI creates the biggest impact."},
				{Title: "Custom AI Build", Description: "Systems trained on your brand voice, products, and customers — not generic templates."},
				{Title: "Integration & Launch", Description: "Plugged into your Shopify stack — Klaviyo, Gorgias, Notion, your apps."},
				{Title: "Monthly Optimization", Description: "As your fractional AI officer, I refine, expand, and keep you ahead."},
			},
		},
		Impacts: Impacts{
			Title: "Expected Impact",
			Items: []Figure{
				{Value: "3x", Label: "Content Output"},
				{Value: "70%", Label: "Faster Production"},
				{Value: "24/7", Label: "Customer Support"},
				{Value: "10x", Label: "Listings / Day"},
			},
		},
		Quote: Quote{
			Text:        `"You should be building your brand and talking to customers — not grinding out product descriptions and email sequences every week."`,
			Attribution: "— Berto, Founder of Lighten AI",
		},
		Audience: []Audience{
			{Title: "Shopify brands", Subtitle: "scaling fast"},
			{Title: "DTC founders", Subtitle: "$10K–$500K/mo"},
			{Title: "Small teams,", Subtitle: "too many hats"},
			{Title: "AI-curious,", Subtitle: "no time to build"},
			{Title: "Canadian", Subtitle: "e-commerce"},
		},
		Retainer: Retainer{
			Title: "Your Monthly Retainer Includes",
			Items: []Highlight{
				{Lead: "Dedicated fractional AI officer", Rest: "— on your team, not a vendor"},
				{Lead: "All four AI systems", Rest: "built, maintained, and optimized"},
				{Lead: "Brand voice AI training", Rest: "— sounds like you, not a chatbot"},
				{Lead: "Shopify + tool integrations", Rest: "— Klaviyo, Gorgias, Notion"},
				{Lead: "Team training & onboarding", Rest: "— everyone confident in 1 week"},
				{Lead: "Slack access", Rest: "— direct line when you need me"},
			},
		},
		Credentials: []string{
			"200+ AI agents built",
			"Ex-KPMG AI & Tax Technology",
			"Shopify Ecosystem",
			"MakersLounge Toronto (500+ members)",
		},
		CTA: CTA{
			Headline: "Let’s audit your Shopify store — free.",
			Subline:  "30 minutes. I’ll show you exactly where AI fits your brand.",
			Contacts: []Contact{
				{Value: "berto@lightenai.co", Label: "Email"},
				{Value: "lightenai.co", Label: "Website"},
				{Value: "linkedin.com/in/bertomill", Label: "LinkedIn"},
			},
		},
	}
}
