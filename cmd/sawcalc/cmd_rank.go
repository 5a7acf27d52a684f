package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
)

// problem is a decision problem read from YAML.
type problem struct {
	Criteria []struct {
		Name   string   `yaml:"name"`
		Type   saw.Type `yaml:"type"`
		Weight float64  `yaml:"weight"`
	} `yaml:"criteria"`
	Alternatives []struct {
		Name   string    `yaml:"name"`
		Values []float64 `yaml:"values"`
	} `yaml:"alternatives"`
}

type rankedAlternative struct {
	Rank       int       `json:"rank"`
	Name       string    `json:"name"`
	Score      float64   `json:"score"`
	Normalized []float64 `json:"normalized"`
}

type rankReport struct {
	Criteria     []saw.Criterion     `json:"criteria"`
	Alternatives []rankedAlternative `json:"alternatives"`
}

func newRankCommand() *cobra.Command {
	var (
		file   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "rank -f problem.yaml",
		Short: "Rank the alternatives of a decision problem",
		Long: `Rank reads criteria and alternatives from a YAML file and prints the
alternatives ordered by their SAW score. Weights must sum to 1.0.

Example problem:

  criteria:
    - {name: harga, type: cost, weight: 0.4}
    - {name: kualitas, type: benefit, weight: 0.6}
  alternatives:
    - {name: A, values: [300, 8]}
    - {name: B, values: [250, 7]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			p, err := loadProblem(file)
			if err != nil {
				return err
			}
			report, err := rankProblem(p)
			if err != nil {
				return err
			}
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printRankTable(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Decision problem YAML file")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadProblem(path string) (*problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	var p problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse problem: %w", err)
	}
	return &p, nil
}

func rankProblem(p *problem) (*rankReport, error) {
	weights := make([]float64, len(p.Criteria))
	types := make([]saw.Type, len(p.Criteria))
	names := make([]string, len(p.Criteria))
	for i, c := range p.Criteria {
		weights[i], types[i], names[i] = c.Weight, c.Type, c.Name
	}
	criteria, err := saw.NewCriteria(weights, types, names)
	if err != nil {
		return nil, err
	}

	matrix := make([][]float64, len(p.Alternatives))
	for i, a := range p.Alternatives {
		matrix[i] = a.Values
	}
	res, err := saw.Calculate(matrix, criteria)
	if err != nil {
		return nil, err
	}

	report := &rankReport{Criteria: criteria.List()}
	for _, i := range res.Ordered() {
		name := p.Alternatives[i].Name
		if name == "" {
			name = fmt.Sprintf("A%d", i+1)
		}
		report.Alternatives = append(report.Alternatives, rankedAlternative{
			Rank:       res.Ranks[i],
			Name:       name,
			Score:      res.Scores[i],
			Normalized: res.Normalized[i],
		})
	}
	return report, nil
}

func printRankTable(w io.Writer, r *rankReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "RANK\tALTERNATIVE\tSCORE")
	for _, c := range r.Criteria {
		fmt.Fprintf(tw, "\t%s (%s)", c.Name, c.Type)
	}
	fmt.Fprintln(tw)
	for _, a := range r.Alternatives {
		fmt.Fprintf(tw, "%d\t%s\t%.4f", a.Rank, a.Name, a.Score)
		for _, v := range a.Normalized {
			fmt.Fprintf(tw, "\t%.4f", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
