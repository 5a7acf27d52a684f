package scoring

import (
	"sort"
	"strings"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
)

// CareerMatch is the career package that best agrees with a student's
// aspiration and top recommendations.
type CareerMatch struct {
	catalog.CareerPackage
	MatchCount int `json:"match_count"`
}

// MatchCareerPackage walks the catalog's career keywords in order. For each
// keyword found in the aspiration it counts the package's core subjects among
// the top five recommendations, and keeps the package with the strictly highest
// count. It returns nil when nothing matches.
func MatchCareerPackage(cat *catalog.Catalog, aspiration string, recs []Recommendation) *CareerMatch {
	if aspiration == "" {
		return nil
	}
	aspiration = strings.ToLower(aspiration)

	top := make(map[string]bool, 5)
	for _, name := range TopSubjects(recs, 5) {
		top[name] = true
	}

	var best *CareerMatch
	bestCount := 0
	for _, kw := range cat.CareerKeywords {
		if !strings.Contains(aspiration, kw.Keyword) {
			continue
		}
		pkg, ok := cat.Package(kw.Package)
		if !ok {
			continue
		}
		count := 0
		for _, s := range pkg.Subjects {
			if top[s] {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = &CareerMatch{CareerPackage: pkg, MatchCount: count}
		}
	}
	return best
}

// PackageSuggestion ranks a career package against a RIASEC profile.
type PackageSuggestion struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Icon  string  `json:"icon"`
	Match float64 `json:"match"`
}

// SuggestPackages scores every career package by summing the profile's scores
// for the Holland code letters that at least one of its core subjects suits.
// The three best are returned; ties keep catalog order.
func SuggestPackages(cat *catalog.Catalog, profile riasec.Profile) []PackageSuggestion {
	out := make([]PackageSuggestion, 0, len(cat.CareerPackages))
	for _, pkg := range cat.CareerPackages {
		suited := make(map[riasec.Dimension]bool)
		for _, s := range pkg.Subjects {
			for _, d := range cat.SubjectRIASEC[s] {
				suited[d] = true
			}
		}
		var match float64
		for _, letter := range profile.HollandCode {
			d, ok := riasec.FromInitial(letter)
			if ok && suited[d] {
				match += profile.Scores[d]
			}
		}
		out = append(out, PackageSuggestion{Key: pkg.Key, Label: pkg.Label, Icon: pkg.Icon, Match: round(match, 2)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Match > out[j].Match })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
