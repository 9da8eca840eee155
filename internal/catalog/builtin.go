package catalog

import "github.com/ceylonpulse/signalengine/internal/model"

// Builtin returns the default 40-signal catalog: 8 Political,
// 8 Economic, 6 Social, 5 Technological, 4 Legal, 9 Environmental.
func Builtin() (*Catalog, error) {
	return New(builtinDefinitions)
}

var builtinDefinitions = []SignalDefinition{
	// Political
	{
		SignalID: "gov-policy-announcements",
		Name:     "Government Policy Announcements",
		Keywords: []string{
			"policy", "tax", "cabinet approves", "budget", "government policy",
			"ministry announces", "policy change", "new policy", "policy decision",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
		Sources:     []string{"parliament", "cabinet"},
	},
	{
		SignalID: "cabinet-parliament-decisions",
		Name:     "Cabinet/Parliament Decisions",
		Keywords: []string{
			"cabinet decision", "parliament decision", "cabinet meeting",
			"parliament approves", "cabinet approves", "parliament passes",
			"bill passed", "legislation", "cabinet nod",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
		Sources:     []string{"parliament", "cabinet"},
	},
	{
		SignalID: "gov-strike-warnings",
		Name:     "Government Sector Strike Warnings",
		Keywords: []string{
			"strike", "trade union", "government sector strike", "union warning",
			"work stoppage", "industrial action", "strike threat", "union protest",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "police-security-alerts",
		Name:     "Police/Security Alerts",
		Keywords: []string{
			"police alert", "security alert", "police warning", "security threat",
			"police operation", "security operation", "police raid", "security measures",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "election-discussions",
		Name:     "Election-related Discussions",
		Keywords: []string{
			"election", "voting", "poll", "election campaign", "election date",
			"election results", "by-election", "general election",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "foreign-policy-agreements",
		Name:     "Foreign Policy / International Agreements",
		Keywords: []string{
			"foreign policy", "international agreement", "bilateral agreement",
			"trade agreement", "diplomatic", "foreign relations", "international treaty",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "tax-revision-rumors",
		Name:     "Tax Revision Rumors",
		Keywords: []string{
			"tax revision", "tax increase", "tax cut", "tax change", "tax reform",
			"vat change", "income tax", "tax policy", "tax hike",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "public-protests",
		Name:     "Public Protests & Demonstrations",
		Keywords: []string{
			"protest", "demonstration", "rally", "march", "protesters",
			"demonstrators", "public protest", "street protest", "sit-in",
		},
		Pestle:      model.PestlePolitical,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},

	// Economic
	{
		SignalID: "inflation-mentions",
		Name:     "Inflation Mentions",
		Keywords: []string{
			"inflation", "price increase", "cost of living", "inflation rate",
			"cpi", "consumer price index", "price rise", "inflationary",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"central bank", "cbsl"},
	},
	{
		SignalID: "fuel-shortage-mentions",
		Name:     "Fuel Shortage Mentions",
		Keywords: []string{
			"fuel shortage", "petrol shortage", "diesel shortage", "fuel crisis",
			"fuel queues", "fuel supply", "fuel availability", "fuel stock",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "dollar-rate-discussions",
		Name:     "Dollar Rate Discussions",
		Keywords: []string{
			"dollar rate", "usd rate", "exchange rate", "rupee dollar",
			"currency rate", "forex rate", "dollar exchange", "usd lkr",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"central bank", "cbsl"},
	},
	{
		SignalID: "tourism-search-trend",
		Name:     "Tourism Search Trend (Google Trends)",
		Keywords: []string{
			"tourism", "tourist", "visitor", "travel sri lanka", "sri lanka tourism",
			"hotel booking", "tourist arrivals", "tourism sector",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"google trends"},
	},
	{
		SignalID: "food-price-spikes",
		Name:     "Food Price Spikes",
		Keywords: []string{
			"food price", "rice price", "vegetable price", "price spike",
			"food cost", "grocery price", "food inflation", "price hike",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "stock-market-volatility",
		Name:     "Stock Market Volatility",
		Keywords: []string{
			"stock market", "cse", "share market", "market volatility",
			"stock exchange", "market crash", "market fall", "share price",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "foreign-investment-news",
		Name:     "Foreign Investment News",
		Keywords: []string{
			"foreign investment", "fdi", "foreign direct investment",
			"investment opportunity", "foreign investor", "investment deal",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityLow,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "currency-black-market",
		Name:     "Currency Black Market Mentions",
		Keywords: []string{
			"black market", "underground market", "illegal currency",
			"black market rate", "unofficial exchange",
		},
		Pestle:      model.PestleEconomic,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	},

	// Social
	{
		SignalID: "crime-safety-alerts",
		Name:     "Crime & Safety Alerts",
		Keywords: []string{
			"crime", "robbery", "theft", "murder", "assault", "safety alert",
			"crime rate", "criminal activity", "security concern",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "public-sentiment-social",
		Name:     "Public Sentiment (Social Media)",
		Keywords: []string{
			"public sentiment", "social media", "twitter", "facebook",
			"viral", "trending", "public opinion", "social reaction",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "migration-visa-interest",
		Name:     "Migration / Visa Interest",
		Keywords: []string{
			"migration", "emigration", "visa", "immigration", "migrate",
			"overseas job", "work visa", "migration trend",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "public-health-discussions",
		Name:     "Public Health Discussions",
		Keywords: []string{
			"disease", "outbreak", "epidemic", "health alert", "public health",
			"health crisis", "dengue", "covid", "health emergency",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "viral-social-trends",
		Name:     "Viral Social Trends",
		Keywords: []string{
			"viral", "trending", "social media trend", "viral video",
			"trending topic", "social trend", "viral content",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "cultural-event-mentions",
		Name:     "Cultural Event Mentions",
		Keywords: []string{
			"cultural event", "festival", "celebration", "cultural festival",
			"religious festival", "event", "cultural celebration",
		},
		Pestle:      model.PestleSocial,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentBand,
		Priority:    model.PriorityLow,
		Mode:        ModeKeyword,
	},

	// Technological
	{
		SignalID: "power-outages-ceb",
		Name:     "Power Outages (CEB)",
		Keywords: []string{
			"power outage", "power cut", "electricity cut", "blackout",
			"load shedding", "power failure", "ceb", "electricity board",
		},
		Pestle:      model.PestleTechnological,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"ceb", "electricity"},
	},
	{
		SignalID: "telecom-outages",
		Name:     "Telecom Outages",
		Keywords: []string{
			"telecom outage", "internet outage", "network outage",
			"mobile network", "internet down", "connection issue", "service disruption",
		},
		Pestle:      model.PestleTechnological,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},
	{
		SignalID: "cyberattack-mentions",
		Name:     "Cyberattack Mentions",
		Keywords: []string{
			"cyberattack", "cyber attack", "hacking", "data breach",
			"cyber security", "cyber threat", "malware", "ransomware",
		},
		Pestle:      model.PestleTechnological,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "ecommerce-growth",
		Name:     "E-commerce Growth Indicators",
		Keywords: []string{
			"e-commerce", "online shopping", "digital commerce",
			"online retail", "ecommerce growth", "digital sales",
		},
		Pestle:      model.PestleTechnological,
		DefaultSwot: model.SwotOpportunity,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityLow,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "digital-payment-failures",
		Name:     "Digital Payments Failure Reports",
		Keywords: []string{
			"payment failure", "digital payment", "payment system down",
			"online payment", "payment issue", "transaction failure",
		},
		Pestle:      model.PestleTechnological,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
	},

	// Legal
	{
		SignalID: "new-business-regulations",
		Name:     "New Regulations Affecting Businesses",
		Keywords: []string{
			"regulation", "new regulation", "business regulation",
			"regulatory change", "compliance", "regulatory framework",
		},
		Pestle:      model.PestleLegal,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
		Sources:     []string{"parliament"},
	},
	{
		SignalID: "court-rulings",
		Name:     "Court Rulings Impacting Industries",
		Keywords: []string{
			"court ruling", "court decision", "legal ruling", "judgment",
			"court order", "supreme court", "high court",
		},
		Pestle:      model.PestleLegal,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleSentimentSign,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "import-export-restrictions",
		Name:     "Import/Export Restriction Changes",
		Keywords: []string{
			"import restriction", "export restriction", "import ban",
			"export ban", "trade restriction", "import control",
		},
		Pestle:      model.PestleLegal,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "customs-port-delays",
		Name:     "Customs/Port Delays",
		Keywords: []string{
			"customs delay", "port delay", "customs clearance",
			"port congestion", "shipping delay", "cargo delay",
		},
		Pestle:      model.PestleLegal,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeywordFrequency,
	},

	// Environmental
	{
		SignalID: "rainfall-alerts",
		Name:     "Rainfall Alerts",
		Keywords: []string{
			"rainfall", "heavy rain", "rain alert", "rainfall warning",
			"monsoon", "rainfall forecast", "heavy rainfall",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "flood-warnings",
		Name:     "Flood Warnings",
		Keywords: []string{
			"flood", "flooding", "flood warning", "flood alert",
			"flash flood", "flood risk", "inundation",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "heat-wave-alerts",
		Name:     "Heat Wave Alerts",
		Keywords: []string{
			"heat wave", "heatwave", "extreme heat", "high temperature",
			"heat alert", "temperature rise", "hot weather",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "landslide-warnings",
		Name:     "Landslide Warnings",
		Keywords: []string{
			"landslide", "landslide warning", "mudslide", "slope failure",
			"landslide risk", "earth movement",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeyword,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "cyclone-updates",
		Name:     "Cyclone Updates",
		Keywords: []string{
			"cyclone", "tropical cyclone", "storm", "cyclone warning",
			"cyclone alert", "tropical storm", "severe weather",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "air-quality-changes",
		Name:     "Air Quality Index Changes",
		Keywords: []string{
			"air quality", "aqi", "air pollution", "pollution",
			"air quality index", "pollution level", "air quality warning",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
	},
	{
		SignalID: "drought-warnings",
		Name:     "Drought Warnings",
		Keywords: []string{
			"drought", "drought warning", "water shortage", "dry spell",
			"drought condition", "water scarcity",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityMedium,
		Mode:        ModeKeyword,
		Sources:     []string{"met", "meteorological", "weather"},
	},
	{
		SignalID: "water-supply-cuts",
		Name:     "Water Supply Cuts (NWSDB)",
		Keywords: []string{
			"water supply cut", "water cut", "water interruption",
			"nwsdb", "water board", "water supply disruption", "water shortage",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityHigh,
		Mode:        ModeKeywordFrequency,
		Sources:     []string{"nwsdb", "water board"},
	},
	{
		SignalID: "coastal-tsunami-alerts",
		Name:     "Coastal Erosion / Tsunami Alerts",
		Keywords: []string{
			"tsunami", "tsunami alert", "tsunami warning", "coastal erosion",
			"sea level", "coastal threat", "tsunami risk",
		},
		Pestle:      model.PestleEnvironmental,
		DefaultSwot: model.SwotThreat,
		SwotRule:    SwotRuleFixed,
		Priority:    model.PriorityLow,
		Mode:        ModeKeyword,
	},
}
