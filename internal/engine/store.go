package engine

import (
	"fmt"
	"strings"
)

// AllergenDefinition is one named substance category in the reference tables.
// Aliases are lower-cased substrings matched against ingredient tokens; an
// alias must belong to exactly one definition.
type AllergenDefinition struct {
	ID          string   `json:"id"`
	Aliases     []string `json:"aliases"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Alternative string   `json:"alternative"`
	Prevalence  float64  `json:"prevalence"`
}

// ConcernDefinition describes a skin concern and the actives that address it.
// Primary and specialty lists must be disjoint within one concern.
type ConcernDefinition struct {
	ID                    string   `json:"id"`
	PrimaryIngredients    []string `json:"primary_ingredients"`
	SpecialtyIngredients  []string `json:"specialty_ingredients"`
	Categories            []string `json:"categories"`
	BaselineEffectiveness float64  `json:"baseline_effectiveness"`
	TimeToResults         string   `json:"time_to_results"`
}

// ConflictRule declares an incompatibility between two specific ingredients.
// The pair is unordered; lookup is order-independent.
type ConflictRule struct {
	IngredientA    string   `json:"ingredient_a"`
	IngredientB    string   `json:"ingredient_b"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// ReferenceData is the raw material for a ReferenceDataStore. CrossReactions
// maps allergen id to related allergen ids; BrandAllowlist and
// IngredientBenefits are keyed by concern id.
type ReferenceData struct {
	Allergens          []AllergenDefinition
	CrossReactions     map[string][]string
	Concerns           []ConcernDefinition
	Conflicts          []ConflictRule
	BrandAllowlist     map[string][]string
	IngredientBenefits map[string]map[string]string
}

// ReferenceDataStore holds the immutable rule tables shared by every
// analyzer. It is constructed once before first use and is safe for
// unbounded concurrent reads; hot reload means building a new store and
// swapping the pointer, never mutating in place.
type ReferenceDataStore struct {
	allergens      []AllergenDefinition
	allergensByID  map[string]*AllergenDefinition
	crossReactions map[string][]string
	concerns       []ConcernDefinition
	concernsByID   map[string]*ConcernDefinition
	conflicts      map[string]*ConflictRule
	brandAllowlist map[string]map[string]struct{}
	benefits       map[string]map[string]string
}

// NewReferenceDataStore validates the given tables and builds the indexed
// store. Integrity violations (duplicate alias across definitions, dangling
// cross-reaction reference, duplicate conflict rule for a pair, overlapping
// primary/specialty lists) are fatal: they abort construction and must never
// surface per-request.
func NewReferenceDataStore(data ReferenceData) (*ReferenceDataStore, error) {
	s := &ReferenceDataStore{
		allergens:      data.Allergens,
		allergensByID:  make(map[string]*AllergenDefinition, len(data.Allergens)),
		crossReactions: data.CrossReactions,
		concerns:       data.Concerns,
		concernsByID:   make(map[string]*ConcernDefinition, len(data.Concerns)),
		conflicts:      make(map[string]*ConflictRule, len(data.Conflicts)),
		brandAllowlist: make(map[string]map[string]struct{}, len(data.BrandAllowlist)),
		benefits:       data.IngredientBenefits,
	}

	aliasOwner := make(map[string]string)
	for i := range s.allergens {
		def := &s.allergens[i]
		if def.ID == "" {
			return nil, fmt.Errorf("allergen definition at index %d has no id", i)
		}
		if _, dup := s.allergensByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate allergen definition %q", def.ID)
		}
		if def.Prevalence < 0 || def.Prevalence > 1 {
			return nil, fmt.Errorf("allergen %q: prevalence %v outside [0,1]", def.ID, def.Prevalence)
		}
		s.allergensByID[def.ID] = def
		for _, alias := range def.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if owner, taken := aliasOwner[alias]; taken {
				return nil, fmt.Errorf("alias %q belongs to both %q and %q", alias, owner, def.ID)
			}
			aliasOwner[alias] = def.ID
		}
	}

	for from, related := range s.crossReactions {
		if _, ok := s.allergensByID[from]; !ok {
			return nil, fmt.Errorf("cross-reaction source %q is not a known allergen", from)
		}
		for _, to := range related {
			if _, ok := s.allergensByID[to]; !ok {
				return nil, fmt.Errorf("cross-reaction %q -> %q references unknown allergen", from, to)
			}
		}
	}

	for i := range s.concerns {
		def := &s.concerns[i]
		if def.ID == "" {
			return nil, fmt.Errorf("concern definition at index %d has no id", i)
		}
		if _, dup := s.concernsByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate concern definition %q", def.ID)
		}
		primary := make(map[string]struct{}, len(def.PrimaryIngredients))
		for _, ing := range def.PrimaryIngredients {
			primary[ing] = struct{}{}
		}
		for _, ing := range def.SpecialtyIngredients {
			if _, overlap := primary[ing]; overlap {
				return nil, fmt.Errorf("concern %q: ingredient %q is both primary and specialty", def.ID, ing)
			}
		}
		s.concernsByID[def.ID] = def
	}

	for i := range data.Conflicts {
		rule := &data.Conflicts[i]
		key := conflictKey(rule.IngredientA, rule.IngredientB)
		if _, dup := s.conflicts[key]; dup {
			return nil, fmt.Errorf("duplicate conflict rule for pair (%s, %s)", rule.IngredientA, rule.IngredientB)
		}
		s.conflicts[key] = rule
	}

	for concern, brands := range data.BrandAllowlist {
		set := make(map[string]struct{}, len(brands))
		for _, b := range brands {
			set[strings.ToLower(b)] = struct{}{}
		}
		s.brandAllowlist[concern] = set
	}

	return s, nil
}

// DefaultReferenceDataStore builds a store from the compiled-in tables.
// The built-in data is validated by construction; a failure here is a
// programming error in the tables themselves.
func DefaultReferenceDataStore() (*ReferenceDataStore, error) {
	return NewReferenceDataStore(defaultReferenceData())
}

// conflictKey normalizes an unordered ingredient pair into a map key so that
// lookup(x,y) == lookup(y,x).
func conflictKey(a, b string) string {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// AllergenDefinitions returns every definition in table order.
func (s *ReferenceDataStore) AllergenDefinitions() []AllergenDefinition {
	return s.allergens
}

// CrossReactionsFor returns the related allergen ids for the given id.
func (s *ReferenceDataStore) CrossReactionsFor(id string) []string {
	return s.crossReactions[id]
}

// Concern looks up a concern definition by id.
func (s *ReferenceDataStore) Concern(id string) (*ConcernDefinition, bool) {
	def, ok := s.concernsByID[id]
	return def, ok
}

// ConcernIDs returns every concern id in table order.
func (s *ReferenceDataStore) ConcernIDs() []string {
	ids := make([]string, 0, len(s.concerns))
	for i := range s.concerns {
		ids = append(ids, s.concerns[i].ID)
	}
	return ids
}

// ConflictBetween looks up the rule for an unordered ingredient pair.
func (s *ReferenceDataStore) ConflictBetween(a, b string) (*ConflictRule, bool) {
	rule, ok := s.conflicts[conflictKey(a, b)]
	return rule, ok
}

// BrandTrusted reports whether the brand is on the concern's allowlist.
func (s *ReferenceDataStore) BrandTrusted(concernID, brand string) bool {
	set, ok := s.brandAllowlist[concernID]
	if !ok {
		return false
	}
	_, trusted := set[strings.ToLower(strings.TrimSpace(brand))]
	return trusted
}

// BenefitFor returns the expected-benefit text for an active within a concern.
func (s *ReferenceDataStore) BenefitFor(concernID, ingredient string) (string, bool) {
	table, ok := s.benefits[concernID]
	if !ok {
		return "", false
	}
	benefit, ok := table[ingredient]
	return benefit, ok
}

// DefinitionForTerm maps a free-text allergen term to a definition by alias
// containment in either direction, e.g. "fragrance" matches the definition
// carrying the alias "fragrance". Returns false when no definition matches.
func (s *ReferenceDataStore) DefinitionForTerm(term string) (*AllergenDefinition, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, false
	}
	for i := range s.allergens {
		def := &s.allergens[i]
		for _, alias := range def.Aliases {
			if strings.Contains(alias, term) || strings.Contains(term, alias) {
				return def, true
			}
		}
	}
	return nil, false
}
