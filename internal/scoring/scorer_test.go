package scoring

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScorer() *Scorer {
	return NewScorer(catalog.Default(), DefaultWeights(), discardLogger())
}

// medicalStudent grades every subject 80 except Biologi and Kimia, and leaves
// Pendidikan Kewarganegaraan ungraded.
func medicalStudent() Student {
	grades := map[string]float64{}
	for _, s := range catalog.Default().Subjects {
		grades[s.Name] = 80
	}
	grades["Biologi"] = 95
	grades["Kimia"] = 90
	delete(grades, "Pendidikan Kewarganegaraan")

	return Student{
		Name:   "Ani",
		Class:  "X-1",
		Grades: grades,
		RIASEC: map[riasec.Dimension]float64{
			riasec.Investigative: 5,
			riasec.Social:        4,
		},
		Aspiration: "Saya ingin jadi Dokter",
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	if err := w.Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		t.Errorf("default weights sum to %f, expected 1.0", w.Sum())
	}
}

func TestApplyCustomWeights(t *testing.T) {
	t.Run("partial override", func(t *testing.T) {
		w, err := DefaultWeights().Apply(CustomWeights{KeyAcademic: 0.5, KeyRIASEC: 0.2})
		require.NoError(t, err)
		assert.Equal(t, WeightSet{Academic: 0.5, RIASEC: 0.2, Aspiration: 0.2, Availability: 0.1}, w)
		assert.NoError(t, w.Validate())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := DefaultWeights().Apply(CustomWeights{"popularity": 0.1})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "custom_weights", verr.Field)
		assert.Contains(t, err.Error(), "popularity")
	})

	t.Run("sum off", func(t *testing.T) {
		w, err := DefaultWeights().Apply(CustomWeights{KeyAcademic: 0.6})
		require.NoError(t, err)
		err = w.Validate()
		var cerr *saw.ConfigurationError
		require.True(t, errors.As(err, &cerr))
		assert.ErrorIs(t, err, saw.ErrWeightSum)
	})
}

func TestAcademicFactor(t *testing.T) {
	student := &Student{Grades: map[string]float64{"Fisika": 85, "Kimia": 105}}
	cat := catalog.Default()

	tests := []struct {
		subject   string
		want      float64
		available bool
	}{
		{"Fisika", 0.85, true},
		{"Kimia", 1.05, true},
		{"Biologi", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			r := AcademicFactor(&SubjectContext{Subject: catalog.Subject{Name: tt.subject}, Student: student, Catalog: cat})
			assert.InDelta(t, tt.want, r.Score, 1e-9)
			assert.Equal(t, tt.available, r.Available)
		})
	}
}

func TestRoundHalfToEven(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{72.25, 1, 72.2},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{2.5, 0, 2},
		{3.5, 0, 4},
		{0.12344, 4, 0.1234},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round(tt.v, tt.places), "round(%v, %d)", tt.v, tt.places)
	}
}

func TestInterestFactor(t *testing.T) {
	cat := catalog.Default()
	score := func(subject string, scores map[riasec.Dimension]float64) float64 {
		sc := &SubjectContext{Subject: catalog.Subject{Name: subject}, Student: &Student{RIASEC: scores}, Catalog: cat}
		return InterestFactor(sc).Score
	}

	t.Run("mean of mapped dimensions", func(t *testing.T) {
		got := score("Biologi", map[riasec.Dimension]float64{riasec.Investigative: 5, riasec.Social: 4})
		assert.InDelta(t, 0.9, got, 1e-9)
	})

	t.Run("missing dimension counts as zero", func(t *testing.T) {
		got := score("Informatika", map[riasec.Dimension]float64{riasec.Investigative: 5})
		assert.InDelta(t, 1.0/3.0, got, 1e-9)
	})

	t.Run("capped at one", func(t *testing.T) {
		got := score("Biologi", map[riasec.Dimension]float64{riasec.Investigative: 7, riasec.Social: 6})
		assert.Equal(t, 1.0, got)
	})

	t.Run("unmapped subject", func(t *testing.T) {
		got := score("Seni Musik", map[riasec.Dimension]float64{riasec.Artistic: 5})
		assert.Equal(t, 0.3, got)
	})
}

func TestAspirationFactor(t *testing.T) {
	cat := catalog.Default()
	score := func(subject, aspiration string) float64 {
		sc := &SubjectContext{Subject: catalog.Subject{Name: subject}, Student: &Student{Aspiration: aspiration}, Catalog: cat}
		return AspirationFactor(sc).Score
	}

	t.Run("doctor", func(t *testing.T) {
		asp := "saya ingin jadi dokter"
		assert.Equal(t, 1.0, score("Biologi", asp))
		assert.InDelta(t, 0.85, score("Kimia", asp), 1e-9)
		assert.InDelta(t, 0.70, score("Matematika Tingkat Lanjut", asp), 1e-9)
		assert.InDelta(t, 0.55, score("Fisika", asp), 1e-9)
		assert.InDelta(t, 0.40, score("Matematika", asp), 1e-9)
		for _, other := range []string{"Ekonomi", "Sosiologi", "Informatika", "Sejarah"} {
			assert.Equal(t, 0.3, score(other, asp), other)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, score("Biologi", "DOKTER hewan"))
	})

	t.Run("best keyword wins", func(t *testing.T) {
		// Biologi is fourth for guru but first for psikolog.
		assert.Equal(t, 1.0, score("Biologi", "guru atau psikolog"))
	})

	t.Run("empty aspiration", func(t *testing.T) {
		assert.Equal(t, 0.5, score("Biologi", ""))
	})
}

func TestAvailabilityFactor(t *testing.T) {
	cat := catalog.Default()
	tests := []struct {
		category string
		want     float64
	}{
		{"IPA", 0.95},
		{"IPS", 0.90},
		{"Bahasa", 0.85},
		{"Umum", 0.95},
		{"Teknologi", 0.75},
		{"Seni", 0.70},
		{"Vokasi", 0.65},
		{"Olahraga", 0.80},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			r := AvailabilityFactor(&SubjectContext{Subject: catalog.Subject{Category: tt.category}, Student: &Student{}, Catalog: cat})
			assert.Equal(t, tt.want, r.Score)
		})
	}
}

func TestRecommend(t *testing.T) {
	s := newTestScorer()
	out, err := s.Recommend(context.Background(), medicalStudent(), nil, nil)
	require.NoError(t, err)

	recs := out.Recommendations
	require.Len(t, recs, 14)
	for i, r := range recs {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, recs[i-1].Score)
		}
		require.Len(t, r.Factors, 4)
	}

	top := recs[0]
	assert.Equal(t, "Biologi", top.Subject)
	assert.Equal(t, "IPA", top.Category)
	assert.Equal(t, 1.0, top.Score)
	assert.Equal(t, 95.0, top.AcademicScore)
	assert.Equal(t, 90.0, top.RIASECMatch)
	assert.Equal(t, 100.0, top.AspirationScore)
	assert.Equal(t, 95.0, top.Availability)
	assert.Equal(t, CriterionValues{Academic: 1, RIASEC: 1, Aspiration: 1, Availability: 1}, top.Normalized)
	assert.Equal(t, CriterionValues{Academic: 0.4, RIASEC: 0.3, Aspiration: 0.2, Availability: 0.1}, top.Weighted)
	assert.True(t, top.MeetsMinimum)
	assert.Equal(t, 70.0, top.MinGrade)

	assert.Equal(t, "Kimia", recs[1].Subject)

	for _, r := range recs {
		if r.Subject == "Pendidikan Kewarganegaraan" {
			assert.Equal(t, 0.0, r.AcademicScore)
			assert.False(t, r.MeetsMinimum)
		}
	}

	assert.Equal(t, DefaultWeights(), out.Weights)
	assert.Equal(t, methodName, out.Summary.Method)
	assert.Equal(t, 14, out.Summary.TotalAlternatives)
	assert.Equal(t, []string{"Biologi", "Kimia", "Antropologi", "Matematika Tingkat Lanjut", "Fisika"}, out.Summary.Top5)
	assert.Equal(t, "40%", out.Summary.Criteria[0].Weight)

	require.NotNil(t, out.CareerMatch)
	assert.Equal(t, "kedokteran", out.CareerMatch.Key)
	assert.Equal(t, 3, out.CareerMatch.MatchCount)
}

func TestRecommendCustomWeights(t *testing.T) {
	s := newTestScorer()

	out, err := s.Recommend(context.Background(), medicalStudent(), nil, CustomWeights{KeyAcademic: 0.5, KeyRIASEC: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 0.5, out.Weights.Academic)
	assert.Equal(t, "50%", out.Summary.Criteria[0].Weight)
	assert.Equal(t, "20%", out.Summary.Criteria[1].Weight)
	assert.Equal(t, 0.5, out.Recommendations[0].Weighted.Academic)

	_, err = s.Recommend(context.Background(), medicalStudent(), nil, CustomWeights{KeyAvailability: 0.3})
	var cerr *saw.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.InDelta(t, 1.2, cerr.Sum, 1e-9)
}

func TestRecommendValidation(t *testing.T) {
	s := newTestScorer()

	t.Run("empty grades", func(t *testing.T) {
		st := medicalStudent()
		st.Grades = nil
		_, err := s.Recommend(context.Background(), st, nil, nil)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "grades", verr.Field)
	})

	t.Run("no subjects", func(t *testing.T) {
		_, err := s.Recommend(context.Background(), medicalStudent(), []catalog.Subject{}, nil)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Recommend(ctx, medicalStudent(), nil, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecommendTiesKeepInputOrder(t *testing.T) {
	s := newTestScorer()
	subjects := []catalog.Subject{
		{Name: "Ekonomi", Category: "IPS", MinGrade: 65},
		{Name: "Kimia", Category: "IPA", MinGrade: 70},
		{Name: "Sosiologi", Category: "IPS", MinGrade: 65},
	}
	st := Student{Grades: map[string]float64{"Ekonomi": 70, "Sosiologi": 70, "Kimia": 90}}

	out, err := s.Recommend(context.Background(), st, subjects, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kimia", "Ekonomi", "Sosiologi"}, TopSubjects(out.Recommendations, 3))
	assert.Equal(t, 2, out.Recommendations[1].Rank)
	assert.Equal(t, 3, out.Recommendations[2].Rank)
	assert.Nil(t, out.CareerMatch)
}

func TestRecommendConcurrent(t *testing.T) {
	s := newTestScorer()
	want, err := s.Recommend(context.Background(), medicalStudent(), nil, nil)
	require.NoError(t, err)
	wantCustom, err := s.Recommend(context.Background(), medicalStudent(), nil, CustomWeights{KeyAcademic: 0.1, KeyRIASEC: 0.6})
	require.NoError(t, err)

	g, ctx := errgroup.WithContext(context.Background())
	results := make([]*Outcome, 32)
	for i := range results {
		g.Go(func() error {
			var custom CustomWeights
			if i%2 == 1 {
				custom = CustomWeights{KeyAcademic: 0.1, KeyRIASEC: 0.6}
			}
			out, err := s.Recommend(ctx, medicalStudent(), nil, custom)
			results[i] = out
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, got := range results {
		if i%2 == 1 {
			assert.Equal(t, wantCustom.Recommendations, got.Recommendations)
		} else {
			assert.Equal(t, want.Recommendations, got.Recommendations)
		}
	}
}
