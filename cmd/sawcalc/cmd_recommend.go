package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
	"github.com/MikeSquared-Agency/Peminatan/internal/scoring"
)

// studentFile is a student profile read from YAML.
type studentFile struct {
	Name          string                       `yaml:"student_name"`
	Class         string                       `yaml:"student_class"`
	Grades        map[string]float64           `yaml:"grades"`
	RIASEC        map[riasec.Dimension]float64 `yaml:"riasec_scores"`
	Aspiration    string                       `yaml:"aspiration"`
	CustomWeights scoring.CustomWeights        `yaml:"custom_weights"`
}

func newRecommendCommand() *cobra.Command {
	var (
		file        string
		catalogPath string
		format      string
		group       string
	)
	cmd := &cobra.Command{
		Use:   "recommend -f student.yaml",
		Short: "Recommend elective subjects for a student",
		Long: `Recommend ranks the catalog's elective subjects for the student described
in a YAML file using report grades, RIASEC scores and aspiration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			st, err := loadStudent(file)
			if err != nil {
				return err
			}

			var subjects []catalog.Subject
			if group != "" {
				subjects = cat.SubjectsByGroup(group)
			}
			scorer := scoring.NewScorer(cat, scoring.DefaultWeights(), discardLogger())
			out, err := scorer.Recommend(cmd.Context(), scoring.Student{
				Name:       st.Name,
				Class:      st.Class,
				Grades:     st.Grades,
				RIASEC:     st.RIASEC,
				Aspiration: st.Aspiration,
			}, subjects, st.CustomWeights)
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return printRecommendTable(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Student profile YAML file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: embedded)")
	cmd.Flags().StringVarP(&group, "group", "g", "", "Only rank subjects in this group")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadStudent(path string) (*studentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read student: %w", err)
	}
	var st studentFile
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse student: %w", err)
	}
	return &st, nil
}

func printRecommendTable(w io.Writer, out *scoring.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSUBJECT\tSCORE\tACADEMIC\tRIASEC\tASPIRATION\tAVAILABILITY\tMIN")
	for _, r := range out.Recommendations {
		mark := "ok"
		if !r.MeetsMinimum {
			mark = fmt.Sprintf("< %g", r.MinGrade)
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
			r.Rank, r.Subject, r.Score, r.AcademicScore, r.RIASECMatch, r.AspirationScore, r.Availability, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if out.CareerMatch != nil {
		fmt.Fprintf(w, "\nCareer package: %s (%d of %d core subjects in top 5)\n",
			out.CareerMatch.Label, out.CareerMatch.MatchCount, len(out.CareerMatch.Subjects))
	}
	return nil
}
