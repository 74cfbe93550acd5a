package news

import "time"

const imageBase = "https://cdn.gazette.dev/img/"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

// DefaultCatalog returns the built-in article catalog. The slice is freshly
// allocated on every call so callers can hold it without aliasing package
// state; the order here is the feed order.
func DefaultCatalog() []Article {
	return []Article{
		{
			ID:          "post-1",
			Title:       "A Little Thing about Terminal Accessibility",
			Author:      "Ines Reyes",
			Excerpt:     "Screen readers and terminals have a complicated history. A tour of what actually works today, what silently breaks, and the handful of habits that keep a text UI usable for everyone.",
			ImageURL:    imageBase + "post-1.jpg",
			ThumbURL:    imageBase + "post-1-thumb.jpg",
			PublishedAt: day(2025, time.July, 30),
			ReadMinutes: 1,
		},
		{
			ID:          "post-2",
			Title:       "Why You Should Care About Context Cancellation",
			Author:      "Marcus Vale",
			Excerpt:     "Every goroutine you start is a promise to stop it. Tracing one leaked subscription through a production incident, and the patterns that would have caught it in review.",
			ImageURL:    imageBase + "post-2.jpg",
			ThumbURL:    imageBase + "post-2-thumb.jpg",
			PublishedAt: day(2025, time.July, 28),
			ReadMinutes: 2,
		},
		{
			ID:          "post-3",
			Title:       "Dithering: The Lost Art of Terminal Images",
			Author:      "Priya Nair",
			Excerpt:     "Before truecolor escape codes, there was Floyd–Steinberg and a 16-color palette. How old constraints produced rendering tricks we still reach for.",
			ImageURL:    imageBase + "post-3.jpg",
			ThumbURL:    imageBase + "post-3-thumb.jpg",
			PublishedAt: day(2025, time.July, 25),
			ReadMinutes: 3,
		},
		{
			ID:          "post-4",
			Title:       "Locale Changes Are Coming to the Standard Library",
			Author:      "Tom Okafor",
			Excerpt:     "Collation, case folding, and why sorting a list of names is harder than it looks. What the proposed APIs get right and where they still punt.",
			ImageURL:    imageBase + "post-4.jpg",
			ThumbURL:    imageBase + "post-4-thumb.jpg",
			PublishedAt: day(2025, time.July, 22),
			ReadMinutes: 4,
		},
		{
			ID:          "post-5",
			Title:       "Collections Were Never Broken, You Were Holding Them Wrong",
			Author:      "Sofia Lindqvist",
			Excerpt:     "An opinionated defense of the humble map, the misunderstood slice, and the iterator pattern that finally made both pleasant.",
			ImageURL:    imageBase + "post-5.jpg",
			ThumbURL:    imageBase + "post-5-thumb.jpg",
			PublishedAt: day(2025, time.July, 19),
			ReadMinutes: 5,
		},
		{
			ID:          "post-6",
			Title:       "The Case for Boring Architecture",
			Author:      "Marcus Vale",
			Excerpt:     "Hexagons, onions, and clean layers all promise the same thing. A repository interface and a composition root get you most of the way with none of the ceremony.",
			ImageURL:    imageBase + "post-6.jpg",
			ThumbURL:    imageBase + "post-6-thumb.jpg",
			PublishedAt: day(2025, time.July, 16),
			ReadMinutes: 6,
		},
		{
			ID:          "post-7",
			Title:       "Reading the Room: Adaptive Color in Modern CLIs",
			Author:      "Ines Reyes",
			Excerpt:     "Light terminals exist, and your users have them. Detecting backgrounds, picking palettes that survive both, and when to just ask.",
			ImageURL:    imageBase + "post-7.jpg",
			ThumbURL:    imageBase + "post-7-thumb.jpg",
			PublishedAt: day(2025, time.July, 13),
			ReadMinutes: 4,
		},
		{
			ID:          "post-8",
			Title:       "What We Learned Shipping a Reader to 40 Million Phones",
			Author:      "Dana Whitfield",
			Excerpt:     "Postmortem of a news client at scale: the prefetch heuristic that backfired, the state machine that saved the error screen, and the metric nobody watched.",
			ImageURL:    imageBase + "post-8.jpg",
			ThumbURL:    imageBase + "post-8-thumb.jpg",
			PublishedAt: day(2025, time.July, 10),
			ReadMinutes: 8,
		},
		{
			ID:          "post-9",
			Title:       "In Defense of the Linear Search",
			Author:      "Tom Okafor",
			Excerpt:     "Your catalog has forty items. The index you are about to build has three invariants you will get wrong. Some numbers on when O(n) is the fast path.",
			ImageURL:    imageBase + "post-9.jpg",
			ThumbURL:    imageBase + "post-9-thumb.jpg",
			PublishedAt: day(2025, time.July, 7),
			ReadMinutes: 3,
		},
		{
			ID:          "post-10",
			Title:       "Favorites, Bookmarks, Stars: Naming the Same Feature for Twenty Years",
			Author:      "Sofia Lindqvist",
			Excerpt:     "A short cultural history of the toggle we all ship, and why every team reinvents its semantics anyway.",
			ImageURL:    imageBase + "post-10.jpg",
			ThumbURL:    imageBase + "post-10-thumb.jpg",
			PublishedAt: day(2025, time.July, 4),
			ReadMinutes: 5,
		},
	}
}
