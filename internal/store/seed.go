package store

import "time"

// Seed content shown until the site owner publishes their own. Timestamps are
// fixed so the default ordering is stable across restarts.

func millis(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		Navbar: NavbarSettings{
			Logo:     "JOJO",
			Subtitle: "My Artisanal Story",
			Links: NavbarLinks{
				Home:    "Home",
				Apparel: CategoryApparel,
				Fibre:   CategoryFibre,
				Visual:  CategoryVisual,
				Journal: CategoryJournal,
			},
			Socials: SocialLinks{
				Instagram: "https://instagram.com",
				Facebook:  "https://facebook.com",
				YouTube:   "https://youtube.com",
			},
		},
		Hero: HeroSettings{
			Tag:         "Archive of Intentional Living",
			Title:       "Where Couture Meets the Hearth",
			Description: "A living archive of fashion design, fiber crafts, and the art of intentional living.",
			ImageLeft:   "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?auto=format&fit=crop&q=80&w=1000",
			ImageRight:  "https://images.unsplash.com/photo-1544441893-675973e31985?auto=format&fit=crop&q=80&w=1000",
		},
		Footer: FooterSettings{
			SubscribeTitle: "Join the inner circle for pattern releases and design musings.",
			ContactTag:     "TALK TO ME",
			ContactEmail:   "jojo@niiting.com",
		},
		HomeSections: HomeSections{
			ApparelTitle: "Featured Collections",
			ApparelTag:   CategoryApparel,
			FibreTitle:   "Featured Collections",
			FibreTag:     CategoryFibre,
			VisualTitle:  "Featured Collections",
			VisualTag:    CategoryVisual,
			ArchiveTitle: "Recent Journal Entries",
			ArchiveTag:   "The Archive",
		},
		PageHeaders: PageHeaders{
			Apparel: PageHeader{Title: CategoryApparel},
			Fibre:   PageHeader{Title: CategoryFibre},
			Visual:  PageHeader{Title: CategoryVisual},
			Journal: PageHeader{Title: "Journal", Subtitle: "The Narrative of Slow Living"},
		},
		Meta: MetaSettings{
			TabTitle: "JOJO — My Artisanal Story",
		},
	}
}

func SeedPortfolio() []PortfolioItem {
	return []PortfolioItem{
		{
			ID:          "1",
			Category:    CategoryApparel,
			Title:       "The Ethereal Nomad",
			Subtitle:    "The Professional Core",
			Description: "A study in fluid silhouettes and sustainable silk draping, exploring the intersection of movement and stasis.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1539109132314-34a93a553f61?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 27),
		},
		{
			ID:          "2",
			Category:    CategoryApparel,
			Title:       "Sartorial Silence",
			Subtitle:    "Fall Collection",
			Description: "Minimalist tailoring focused on the architecture of the human form.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 26),
		},
		{
			ID:          "11",
			Category:    CategoryApparel,
			Title:       "Linen & Light",
			Subtitle:    "Summer Series",
			Description: "Exploring the breathability of natural fibers in harsh environments.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 25),
		},
		{
			ID:          "12",
			Category:    CategoryApparel,
			Title:       "The Urban Veil",
			Subtitle:    "Concept Wear",
			Description: "Protective silhouettes for the modern city dweller.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1485230895905-ec40ba36b9bc?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 24),
		},
		{
			ID:          "3",
			Category:    CategoryFibre,
			Title:       "Artisanal Handmades",
			Subtitle:    "The Scalable Business",
			Description: "A collection of tactile crochet and knitwear designed for the modern hearth.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1584992236310-6edddc08acff?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 23),
		},
		{
			ID:          "4",
			Category:    CategoryFibre,
			Title:       "Woven Echoes",
			Subtitle:    "Tapestry Work",
			Description: "Hand-dyed wools forming abstract landscapes.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1528476513691-07e6f563d97f?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 22),
		},
		{
			ID:          "5",
			Category:    CategoryFibre,
			Title:       "The Soft Edge",
			Subtitle:    "Experimental Fibre",
			Description: "Blending metallic threads with organic linen.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1464820453369-31d2c0b651af?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 21),
		},
		{
			ID:          "6",
			Category:    CategoryFibre,
			Title:       "Tactile Poetry",
			Subtitle:    "Heirloom Knits",
			Description: "Designs meant to be passed down through generations.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1618220179428-22790b461013?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 20),
		},
		{
			ID:          "7",
			Category:    CategoryVisual,
			Title:       "Spaces we Inhabit",
			Subtitle:    "The Heart of the Home",
			Description: "Minimalist mobiles and wall hangings crafted from organic materials.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1513519245088-0e12902e35ca?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 19),
		},
		{
			ID:          "8",
			Category:    CategoryVisual,
			Title:       "Chromatic Stillness",
			Subtitle:    "Acrylic Series",
			Description: "Exploring the boundary between color and emotion.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1541701494587-cb58502866ab?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 18),
		},
		{
			ID:          "9",
			Category:    CategoryVisual,
			Title:       "Organic Forms",
			Subtitle:    "Clay & Wood",
			Description: "Sculptures that mimic the erosion of time.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1525904097878-94fb15835963?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 17),
		},
		{
			ID:          "10",
			Category:    CategoryVisual,
			Title:       "Silent Architect",
			Subtitle:    "Drafting Series",
			Description: "Ink on paper studies of imaginary landscapes.",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1456086272160-b28b0645b729?auto=format&fit=crop&q=80&w=1000"},
			CreatedAt:   millis(2024, time.October, 16),
		},
	}
}

func SeedBlogs() []BlogPost {
	return []BlogPost{
		{
			ID:        "b1",
			Slug:      "on-motherhood-and-the-needle",
			Title:     "On Motherhood and the Needle",
			Date:      "October 28, 2024",
			Content:   "Exploring the shift in perspective that parenthood brings to the creative process. How my son redefined my aesthetic from sharp edges to soft, protective layers of intentional design. This is a journey through the changing nature of my studio practice since becoming a mother.",
			ImageURLs: []string{"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&q=80&w=1000"},
			Author:    "Elena",
			CreatedAt: millis(2024, time.October, 28),
		},
		{
			ID:        "b2",
			Slug:      "the-global-shift-toward-slow-fashion",
			Title:     "The Global Shift Toward Slow Fashion",
			Date:      "October 26, 2024",
			Content:   "Why intentional living is becoming a necessity in the modern wardrobe. We are seeing a profound move away from the frantic cycles of consumption toward a more considered, heirloom-focused approach to dressing.",
			ImageURLs: []string{"https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?auto=format&fit=crop&q=80&w=1000"},
			Author:    "Elena",
			CreatedAt: millis(2024, time.October, 26),
		},
		{
			ID:        "b3",
			Slug:      "the-morning-ritual-of-creation",
			Title:     "The Morning Ritual of Creation",
			Date:      "October 24, 2024",
			Content:   "The quiet hours before the world wakes are the most fertile for new ideas. It starts with a simple cup of tea and the feel of the linen between my fingers.",
			ImageURLs: []string{"https://images.unsplash.com/photo-1492133969098-09ba496aa16a?auto=format&fit=crop&q=80&w=1000"},
			Author:    "Elena",
			CreatedAt: millis(2024, time.October, 24),
		},
		{
			ID:        "b4",
			Slug:      "texture-as-language",
			Title:     "Texture as Language",
			Date:      "October 22, 2024",
			Content:   "A deep dive into how fiber can communicate emotions that words often fail to capture. Rough wool vs. smooth silk tells a story of conflict and resolution.",
			ImageURLs: []string{"https://images.unsplash.com/photo-1444491741275-3747c53c99b4?auto=format&fit=crop&q=80&w=1000"},
			Author:    "Elena",
			CreatedAt: millis(2024, time.October, 22),
		},
	}
}
