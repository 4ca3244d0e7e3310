package domain

// AnalysisSection is one heading of the closing trade-off summary.
type AnalysisSection struct {
	// Title is the section heading.
	Title string

	// Items are the bullet points, in display order.
	Items []string
}

// TradeoffAnalysis returns the fixed editorial summary printed after
// every benchmark. It does not depend on measured data.
func TradeoffAnalysis() []AnalysisSection {
	return []AnalysisSection{
		{
			Title: "PROS of Document-Centric Storage",
			Items: []string{
				"Schema flexibility - documents can evolve organically",
				"Faster relationship traversal - direct links vs JOINs",
				"Better cache locality - related data stored together",
				"Simpler mental model - documents as living entities",
				"No impedance mismatch - JSON in, JSON out",
				"Organic discovery through tags and links",
				"Self-describing data with metadata",
			},
		},
		{
			Title: "CONS of Document-Centric Storage",
			Items: []string{
				"Higher memory overhead per document (metadata)",
				"Index duplication (tag_index, link_index)",
				"No ACID guarantees across documents",
				"Potential for inconsistent relationships",
				"Limited query expressiveness vs SQL",
				"Harder to enforce data integrity constraints",
				"May not scale well for highly normalized data",
			},
		},
		{
			Title: "BEST USE CASES",
			Items: []string{
				"Content management systems",
				"Social networks (posts, users, relationships)",
				"IoT data collection",
				"Rapid prototyping and evolving schemas",
				"Graph-like data with organic relationships",
			},
		},
		{
			Title: "AVOID FOR",
			Items: []string{
				"Financial transactions (need ACID)",
				"Highly normalized data",
				"Complex analytical queries",
				"Strict data consistency requirements",
			},
		},
	}
}
