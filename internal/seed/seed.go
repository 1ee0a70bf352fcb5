// ABOUTME: Sample news articles and seeding logic for local development
// ABOUTME: Used by the seed command; the tool surface itself never writes

package seed

import (
	"time"

	"github.com/2389/newsdesk/internal/store"
)

// SampleArticles returns a fresh set of sample news articles with
// published_at offsets relative to now, spanning several categories and
// recency windows.
func SampleArticles(now time.Time) []store.Article {
	now = now.UTC()
	return []store.Article{
		{
			Title:       "AI Reaches New Milestone in Natural Language Understanding",
			Description: "Researchers announce breakthrough in AI's ability to understand context and nuance in human language.",
			Content:     "In a significant development for artificial intelligence, researchers have announced a breakthrough in natural language understanding. The new model demonstrates unprecedented ability to grasp context, detect nuance, and generate human-like responses across multiple languages.",
			Author:      "Dr. Sarah Chen",
			Source:      "AI Research Today",
			URL:         "https://example.com/ai-milestone",
			ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    "technology",
			Tags:        []string{"ai", "machine-learning", "nlp", "research"},
		},
		{
			Title:       "Global Climate Summit Announces Historic Agreement",
			Description: "World leaders commit to ambitious carbon reduction targets at landmark climate conference.",
			Content:     "In a historic move, leaders from over 150 countries have signed a comprehensive agreement to reduce global carbon emissions by 50% by 2035. The summit marks a turning point in international climate cooperation.",
			Author:      "Michael Rodriguez",
			Source:      "Environmental News Network",
			URL:         "https://example.com/climate-summit",
			ImageURL:    "https://images.unsplash.com/photo-1569163139394-de4798aa62b5?w=800",
			PublishedAt: now.Add(-5 * time.Hour),
			Category:    "environment",
			Tags:        []string{"climate", "environment", "politics", "sustainability"},
		},
		{
			Title:       "Tech Giants Announce Collaboration on Quantum Computing",
			Description: "Major technology companies join forces to accelerate quantum computing development.",
			Content:     "Leading technology companies have announced an unprecedented collaboration to advance quantum computing research. The partnership aims to make quantum computing practical for real-world applications within five years.",
			Author:      "Lisa Wang",
			Source:      "Tech Innovation Weekly",
			URL:         "https://example.com/quantum-collaboration",
			ImageURL:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800",
			PublishedAt: now.Add(-8 * time.Hour),
			Category:    "technology",
			Tags:        []string{"quantum-computing", "technology", "innovation", "collaboration"},
		},
		{
			Title:       "New Study Reveals Benefits of Mediterranean Diet",
			Description: "Long-term research shows significant health improvements from Mediterranean-style eating.",
			Content:     "A comprehensive 10-year study demonstrates that adherence to a Mediterranean diet leads to substantial improvements in cardiovascular health, longevity, and overall well-being.",
			Author:      "Dr. Amanda Foster",
			Source:      "Health & Wellness Journal",
			URL:         "https://example.com/mediterranean-diet-study",
			ImageURL:    "https://images.unsplash.com/photo-1490818387583-1baba5e638af?w=800",
			PublishedAt: now.Add(-12 * time.Hour),
			Category:    "health",
			Tags:        []string{"health", "nutrition", "diet", "research"},
		},
		{
			Title:       "SpaceX Successfully Launches Mars Mission",
			Description: "Latest spacecraft begins journey to the Red Planet with advanced scientific instruments.",
			Content:     "SpaceX has successfully launched its most ambitious Mars mission to date. The spacecraft carries cutting-edge scientific instruments designed to search for signs of past microbial life.",
			Author:      "James Mitchell",
			Source:      "Space Exploration News",
			URL:         "https://example.com/spacex-mars-mission",
			ImageURL:    "https://images.unsplash.com/photo-1516849841032-87cbac4d88f7?w=800",
			PublishedAt: now.Add(-18 * time.Hour),
			Category:    "science",
			Tags:        []string{"space", "mars", "spacex", "exploration"},
		},
		{
			Title:       "Renewable Energy Surpasses Fossil Fuels in EU",
			Description: "Historic milestone as clean energy becomes dominant power source across Europe.",
			Content:     "For the first time in history, renewable energy sources have generated more electricity than fossil fuels across the European Union. Solar and wind power led the transition.",
			Author:      "Emma Larsson",
			Source:      "Green Energy Today",
			URL:         "https://example.com/eu-renewable-energy",
			ImageURL:    "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=800",
			PublishedAt: now.Add(-24 * time.Hour),
			Category:    "energy",
			Tags:        []string{"renewable-energy", "solar", "wind", "sustainability", "europe"},
		},
		{
			Title:       "Breakthrough in Cancer Treatment Shows Promise",
			Description: "New immunotherapy approach demonstrates remarkable success in clinical trials.",
			Content:     "Medical researchers have announced promising results from clinical trials of a novel cancer immunotherapy. The treatment has shown an 80% success rate in certain types of cancer.",
			Author:      "Dr. Robert Kim",
			Source:      "Medical Advances Journal",
			URL:         "https://example.com/cancer-breakthrough",
			ImageURL:    "https://images.unsplash.com/photo-1579154204601-01588f351e67?w=800",
			PublishedAt: now.Add(-30 * time.Hour),
			Category:    "health",
			Tags:        []string{"health", "cancer", "research", "medical", "breakthrough"},
		},
		{
			Title:       "Stock Markets Reach All-Time High",
			Description: "Global markets surge as economic indicators show strong growth.",
			Content:     "Major stock indices around the world have reached record highs, driven by positive economic data and strong corporate earnings.",
			Author:      "David Thompson",
			Source:      "Financial Times",
			URL:         "https://example.com/markets-all-time-high",
			ImageURL:    "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
			PublishedAt: now.Add(-48 * time.Hour),
			Category:    "business",
			Tags:        []string{"finance", "stocks", "economy", "markets"},
		},
		{
			Title:       "Olympic Games 2028: New Sports Added to Lineup",
			Description: "IOC announces inclusion of esports and other modern competitions.",
			Content:     "The International Olympic Committee has officially added several new sports to the 2028 Olympic Games, including esports, breaking, and skateboarding.",
			Author:      "Sophie Martin",
			Source:      "Sports International",
			URL:         "https://example.com/olympics-new-sports",
			ImageURL:    "https://images.unsplash.com/photo-1587280501635-68a0e82cd5ff?w=800",
			PublishedAt: now.Add(-60 * time.Hour),
			Category:    "sports",
			Tags:        []string{"sports", "olympics", "esports", "competition"},
		},
		{
			Title:       "Scientists Discover New Deep-Sea Species",
			Description: "Expedition uncovers fascinating new life forms in unexplored ocean depths.",
			Content:     "A deep-sea exploration mission has discovered dozens of previously unknown species living at extreme depths. The findings highlight how much of Earth's oceans remain unexplored.",
			Author:      "Dr. Maria Santos",
			Source:      "Ocean Discovery Magazine",
			URL:         "https://example.com/deep-sea-species",
			ImageURL:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
			PublishedAt: now.Add(-72 * time.Hour),
			Category:    "science",
			Tags:        []string{"science", "ocean", "discovery", "marine-biology"},
		},
	}
}
