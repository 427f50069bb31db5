package content

// Default returns the literal site data. Each call returns a fresh copy so
// callers may apply configuration overrides without touching shared state.
func Default() *Site {
	return &Site{
		Profile: Profile{
			Name:        "Hanrui Zeng",
			Title:       "Ph.D. Candidate in Economics",
			Institution: "University of Pittsburgh",
			Location:    "Pittsburgh, PA",
			Email:       "hanruizeng@example.edu",
			Bio: "I am an economist and data scientist interested in causal inference, econometrics, and the " +
				"interplay between language and economic outcomes. My current work studies downstream " +
				"impacts of assortment changes and out-of-stock events on customers and sellers.",
			ScholarLink:  "https://scholar.google.com/",
			LinkedinLink: "https://www.linkedin.com/in/hanruizeng/",
			GithubLink:   "https://github.com/hanruizeng",
			SocialLink:   "https://x.com/",
		},
		ResearchInterests: []string{
			"Causal inference",
			"Econometrics",
			"Language acquisition & development",
			"Marketing analytics",
		},
		News: []NewsItem{
			{Date: "Sep 2025", Text: "Presented at XYZ Conference on causal estimation with synthetic DiD."},
			{Date: "Aug 2025", Text: "Completed Economist Internship at Amazon Devices Science."},
		},
		Research: []ResearchHighlight{
			{
				Title:   "Downstream Impacts of Assortment Changes",
				Summary: "Measures how removing certain ASINs influences customer behavior and third-party seller performance using DML and Synthetic DiD.",
				Links:   []Link{{Label: "Paper", Href: "#"}, {Label: "Slides", Href: "#"}},
			},
			{
				Title:   "Railways and Language Assimilation in Colonial India",
				Summary: "Studies transportation shocks and linguistic outcomes using historical data and modern causal methods.",
				Links:   []Link{{Label: "Draft", Href: "#"}, {Label: "Data Appendix", Href: "#"}},
			},
		},
		Publications: []Publication{
			{
				Year:    2025,
				Title:   "Downstream Impacts of Assortment Changes: Evidence from OOS Events",
				Authors: "Zeng, H.",
				Venue:   "Working Paper",
				Link:    "#",
				Citation: `@article{zeng2025assortment,
  title={Downstream Impacts of Assortment Changes: Evidence from OOS Events},
  author={Zeng, Hanrui},
  year={2025},
  note={Working paper}
}`,
			},
			{
				Year:    2024,
				Title:   "Railways and Language Assimilation in Colonial India",
				Authors: "Zeng, H.",
				Venue:   "Draft available upon request",
				Link:    "#",
				Citation: `@unpublished{zeng2024railways,
  title={Railways and Language Assimilation in Colonial India},
  author={Zeng, Hanrui},
  year={2024}
}`,
			},
		},
		Teaching: []TeachingEntry{
			{
				Term:   "Fall 2025",
				Course: "Latin American Economic Development (TA)",
				Role:   "Teaching Assistant",
				Notes:  "Sections, office hours, and grading.",
			},
		},
		Service: []ServiceItem{
			{Text: "Referee: Journal of Applied Econometrics (ad-hoc)"},
			{Text: "Organizer: Graduate Causal Inference Reading Group"},
		},
		LastUpdated: "Sep 4, 2025",
	}
}
