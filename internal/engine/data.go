package engine

// defaultReferenceData returns the compiled-in rule tables. The tables are
// deliberately static: scoring must be reproducible from this data plus the
// caller's profile and product, with no external calls mid-evaluation.
func defaultReferenceData() ReferenceData {
	return ReferenceData{
		Allergens: []AllergenDefinition{
			{
				ID:          "fragrances",
				Aliases:     []string{"fragrance", "parfum", "perfume", "aroma"},
				Severity:    SeverityHigh,
				Category:    "fragrance",
				Description: "Undisclosed scent blends are the most common cause of cosmetic contact dermatitis.",
				Alternative: "fragrance-free formulations",
				Prevalence:  0.030,
			},
			{
				ID:          "essential_oils",
				Aliases:     []string{"lavender oil", "tea tree oil", "bergamot oil", "linalool", "limonene", "citral"},
				Severity:    SeverityMedium,
				Category:    "fragrance",
				Description: "Botanical oils oxidize on the shelf into sensitizing compounds.",
				Alternative: "squalane or mineral oil based products",
				Prevalence:  0.020,
			},
			{
				ID:          "formaldehyde_releasers",
				Aliases:     []string{"dmdm hydantoin", "quaternium-15", "imidazolidinyl urea", "diazolidinyl urea", "bronopol"},
				Severity:    SeverityHigh,
				Category:    "preservative",
				Description: "Preservatives that slowly release formaldehyde, a potent sensitizer.",
				Alternative: "products preserved with phenoxyethanol",
				Prevalence:  0.020,
			},
			{
				ID:          "isothiazolinones",
				Aliases:     []string{"methylisothiazolinone", "methylchloroisothiazolinone", "benzisothiazolinone"},
				Severity:    SeverityHigh,
				Category:    "preservative",
				Description: "Rinse-off preservatives behind a wave of contact allergy since the 2010s.",
				Alternative: "leave-on products with alternative preservative systems",
				Prevalence:  0.015,
			},
			{
				ID:          "parabens",
				Aliases:     []string{"methylparaben", "propylparaben", "butylparaben", "ethylparaben"},
				Severity:    SeverityMedium,
				Category:    "preservative",
				Description: "Low-rate sensitizers, mostly relevant on already damaged skin.",
				Alternative: "paraben-free preservative systems",
				Prevalence:  0.010,
			},
			{
				ID:          "sulfates",
				Aliases:     []string{"sodium lauryl sulfate", "sodium laureth sulfate", "ammonium lauryl sulfate"},
				Severity:    SeverityLow,
				Category:    "surfactant",
				Description: "Anionic cleansers that strip the lipid barrier and cause irritant reactions.",
				Alternative: "glucoside or amino-acid based cleansers",
				Prevalence:  0.025,
			},
			{
				ID:          "cocamidopropyl_betaine",
				Aliases:     []string{"cocamidopropyl betaine", "coco betaine"},
				Severity:    SeverityMedium,
				Category:    "surfactant",
				Description: "Amphoteric surfactant whose manufacturing impurities drive sensitization.",
				Alternative: "decyl glucoside cleansers",
				Prevalence:  0.070,
			},
			{
				ID:          "lanolin",
				Aliases:     []string{"lanolin", "wool alcohol", "wool wax"},
				Severity:    SeverityMedium,
				Category:    "emollient",
				Description: "Sheep-derived emollient; a classic patch-test positive on eczematous skin.",
				Alternative: "plant-derived emollients such as shea butter",
				Prevalence:  0.060,
			},
			{
				ID:          "propylene_glycol",
				Aliases:     []string{"propylene glycol"},
				Severity:    SeverityLow,
				Category:    "humectant",
				Description: "Common humectant and penetration enhancer; irritating at high concentration.",
				Alternative: "butylene glycol or glycerin based products",
				Prevalence:  0.035,
			},
			{
				ID:          "drying_alcohols",
				Aliases:     []string{"alcohol denat", "denatured alcohol", "sd alcohol", "isopropyl alcohol"},
				Severity:    SeverityLow,
				Category:    "solvent",
				Description: "Volatile alcohols that dry and disrupt the barrier with repeated use.",
				Alternative: "alcohol-free toners and essences",
				Prevalence:  0.050,
			},
		},
		CrossReactions: map[string][]string{
			"fragrances":             {"essential_oils"},
			"essential_oils":         {"fragrances"},
			"formaldehyde_releasers": {"isothiazolinones"},
			"isothiazolinones":       {"formaldehyde_releasers"},
			"parabens":               {"formaldehyde_releasers"},
			"sulfates":               {"cocamidopropyl_betaine"},
			"cocamidopropyl_betaine": {"sulfates"},
			"lanolin":                {"propylene_glycol"},
		},
		Concerns: []ConcernDefinition{
			{
				ID:                    "acne",
				PrimaryIngredients:    []string{"salicylic acid", "niacinamide", "benzoyl peroxide", "azelaic acid", "zinc pca"},
				SpecialtyIngredients:  []string{"centella asiatica", "snail secretion filtrate", "propolis", "tea tree"},
				Categories:            []string{"serum", "cleanser", "toner", "spot treatment"},
				BaselineEffectiveness: 0.80,
				TimeToResults:         "4-6 weeks",
			},
			{
				ID:                    "dryness",
				PrimaryIngredients:    []string{"hyaluronic acid", "glycerin", "ceramide", "squalane", "urea"},
				SpecialtyIngredients:  []string{"beta-glucan", "birch juice", "madecassoside"},
				Categories:            []string{"moisturizer", "cream", "serum", "essence"},
				BaselineEffectiveness: 0.85,
				TimeToResults:         "1-2 weeks",
			},
			{
				ID:                    "aging",
				PrimaryIngredients:    []string{"retinol", "peptide", "vitamin c", "bakuchiol", "coenzyme q10"},
				SpecialtyIngredients:  []string{"ginseng", "adenosine", "fermented rice"},
				Categories:            []string{"serum", "cream", "eye cream"},
				BaselineEffectiveness: 0.75,
				TimeToResults:         "8-12 weeks",
			},
			{
				ID:                    "hyperpigmentation",
				PrimaryIngredients:    []string{"vitamin c", "tranexamic acid", "kojic acid", "arbutin", "niacinamide"},
				SpecialtyIngredients:  []string{"licorice root", "rice bran", "galactomyces"},
				Categories:            []string{"serum", "essence", "mask"},
				BaselineEffectiveness: 0.70,
				TimeToResults:         "6-10 weeks",
			},
			{
				ID:                    "redness",
				PrimaryIngredients:    []string{"centella asiatica", "allantoin", "panthenol", "madecassoside"},
				SpecialtyIngredients:  []string{"mugwort", "houttuynia cordata", "green tea"},
				Categories:            []string{"toner", "serum", "moisturizer"},
				BaselineEffectiveness: 0.75,
				TimeToResults:         "2-4 weeks",
			},
			{
				ID:                    "oiliness",
				PrimaryIngredients:    []string{"niacinamide", "witch hazel", "kaolin", "salicylic acid"},
				SpecialtyIngredients:  []string{"green tea", "volcanic ash", "willow bark"},
				Categories:            []string{"toner", "cleanser", "mask"},
				BaselineEffectiveness: 0.70,
				TimeToResults:         "2-4 weeks",
			},
		},
		Conflicts: []ConflictRule{
			{
				IngredientA:    "retinol",
				IngredientB:    "vitamin c",
				Severity:       SeverityMedium,
				Description:    "Retinol and pure vitamin C compete for skin tolerance and destabilize each other at mismatched pH.",
				Recommendation: "Use vitamin C in the morning and retinol at night.",
			},
			{
				IngredientA:    "retinol",
				IngredientB:    "benzoyl peroxide",
				Severity:       SeverityHigh,
				Description:    "Benzoyl peroxide oxidizes retinol, cancelling both actives and compounding irritation.",
				Recommendation: "Alternate nights, or switch to adapalene which tolerates benzoyl peroxide.",
			},
			{
				IngredientA:    "retinol",
				IngredientB:    "salicylic acid",
				Severity:       SeverityMedium,
				Description:    "Layering a retinoid over BHA exfoliation frequently overwhelms the barrier.",
				Recommendation: "Keep them in separate routines and build up frequency slowly.",
			},
			{
				IngredientA:    "retinol",
				IngredientB:    "glycolic acid",
				Severity:       SeverityHigh,
				Description:    "AHA plus retinoid is the most common cause of self-inflicted retinoid burn.",
				Recommendation: "Do not combine in one routine; alternate nights at most.",
			},
			{
				IngredientA:    "vitamin c",
				IngredientB:    "niacinamide",
				Severity:       SeverityLow,
				Description:    "At high concentrations the pair can flush sensitive skin; the old incompatibility claim is otherwise outdated.",
				Recommendation: "Fine for most users; separate applications if flushing occurs.",
			},
			{
				IngredientA:    "vitamin c",
				IngredientB:    "benzoyl peroxide",
				Severity:       SeverityMedium,
				Description:    "Benzoyl peroxide oxidizes ascorbic acid on contact.",
				Recommendation: "Apply at different times of day.",
			},
			{
				IngredientA:    "glycolic acid",
				IngredientB:    "salicylic acid",
				Severity:       SeverityMedium,
				Description:    "Stacking AHA and BHA doubles exfoliation load and barrier stress.",
				Recommendation: "Pick one exfoliant per routine unless skin is well acclimated.",
			},
			{
				IngredientA:    "benzoyl peroxide",
				IngredientB:    "tretinoin",
				Severity:       SeverityHigh,
				Description:    "Benzoyl peroxide degrades tretinoin on contact.",
				Recommendation: "Apply twelve hours apart.",
			},
		},
		BrandAllowlist: map[string][]string{
			"acne":              {"cosrx", "paula's choice", "la roche-posay"},
			"dryness":           {"cerave", "illiyoon", "laneige"},
			"aging":             {"the ordinary", "missha", "sulwhasoo"},
			"hyperpigmentation": {"beauty of joseon", "skinceuticals", "melano cc"},
			"redness":           {"dr. jart+", "purito", "avene"},
			"oiliness":          {"innisfree", "some by mi", "benton"},
		},
		IngredientBenefits: map[string]map[string]string{
			"acne": {
				"salicylic acid":           "unclogs pores by exfoliating inside the follicle",
				"niacinamide":              "regulates sebum and calms post-blemish redness",
				"benzoyl peroxide":         "kills acne-causing bacteria",
				"azelaic acid":             "reduces both breakouts and the marks they leave",
				"zinc pca":                 "tempers oil production",
				"centella asiatica":        "soothes inflamed breakouts",
				"snail secretion filtrate": "supports healing of blemish marks",
				"propolis":                 "mild antibacterial soothing",
				"tea tree":                 "targets blemish-causing bacteria",
			},
			"dryness": {
				"hyaluronic acid": "binds water into the upper skin layers",
				"glycerin":        "draws and holds moisture",
				"ceramide":        "rebuilds the lipid barrier",
				"squalane":        "seals in hydration without heaviness",
				"urea":            "softens rough, flaky patches",
				"beta-glucan":     "deep, lasting hydration",
				"birch juice":     "lightweight hydration with soothing minerals",
				"madecassoside":   "repairs a compromised moisture barrier",
			},
			"aging": {
				"retinol":        "accelerates cell turnover and smooths fine lines",
				"peptide":        "signals collagen production",
				"vitamin c":      "brightens and defends against free-radical damage",
				"bakuchiol":      "retinol-like smoothing without the irritation",
				"coenzyme q10":   "supports skin energy metabolism",
				"ginseng":        "firms and revitalizes dull skin",
				"adenosine":      "softens the look of wrinkles",
				"fermented rice": "brightens and refines texture",
			},
			"hyperpigmentation": {
				"vitamin c":       "fades existing dark spots",
				"tranexamic acid": "interrupts pigment signaling",
				"kojic acid":      "inhibits melanin formation",
				"arbutin":         "gradually evens skin tone",
				"niacinamide":     "blocks pigment transfer to the surface",
				"licorice root":   "brightens and calms",
				"rice bran":       "gentle tone-evening antioxidants",
				"galactomyces":    "improves clarity and radiance",
			},
			"redness": {
				"centella asiatica":  "calms reactive, irritated skin",
				"allantoin":          "comforts and softens",
				"panthenol":          "soothes while supporting barrier repair",
				"madecassoside":      "reduces visible redness",
				"mugwort":            "eases heat and irritation",
				"houttuynia cordata": "cools reactive skin",
				"green tea":          "antioxidant calming",
			},
			"oiliness": {
				"niacinamide":    "normalizes sebum over time",
				"witch hazel":    "tightens the look of pores",
				"kaolin":         "absorbs excess surface oil",
				"salicylic acid": "keeps pores clear of oil plugs",
				"green tea":      "reduces shine",
				"volcanic ash":   "deep-cleans oily zones",
				"willow bark":    "gentle natural exfoliation",
			},
		},
	}
}
