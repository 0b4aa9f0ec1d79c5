// Package rules implements the offline "rules" commands: they read the stored rules without running the controller.
package rules

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/acpilot/acpilot/internal/app"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	Cmd = cobra.Command{
		Use:   "rules",
		Short: "Inspect the stored rules",
	}
	listCmd = cobra.Command{
		Use:   "list",
		Short: "List the stored rules",
		RunE:  listRules(os.Stdout, viper.GetViper()),
	}
	exportCmd = cobra.Command{
		Use:   "export",
		Short: "Write the stored rules as YAML",
		RunE:  exportRules(os.Stdout, viper.GetViper()),
	}
	evaluateCmd = cobra.Command{
		Use:   "evaluate",
		Short: "Show which rule is active for a temperature",
		RunE:  evaluateRules(os.Stdout, viper.GetViper()),
	}
)

func init() {
	evaluateCmd.Flags().Int("hour", rules.AnyHour, "hour of day to evaluate (default: every hour)")
	evaluateCmd.Flags().Float64("temp", 25.0, "room temperature to evaluate")
	_ = viper.BindPFlag("evaluate.hour", evaluateCmd.Flags().Lookup("hour"))
	_ = viper.BindPFlag("evaluate.temp", evaluateCmd.Flags().Lookup("temp"))
	Cmd.AddCommand(&listCmd, &exportCmd, &evaluateCmd)
}

// readRules returns the rules held by the configured backend, or the default rules if none have been stored yet.
// Unlike the controller, it never writes to the backend.
func readRules(ctx context.Context, v *viper.Viper) ([]rules.Rule, error) {
	backend, err := app.NewBackend(v)
	if err != nil {
		return nil, err
	}
	body, err := backend.Load(ctx)
	if err == nil {
		var r []rules.Rule
		if r, err = store.Decode(body); err == nil {
			return r, nil
		}
	}
	if errors.Is(err, store.ErrNoDocument) {
		return rules.DefaultRules(), nil
	}
	return nil, err
}

const listFormat = "%-3s %-24s %-8s %-32s %s\n"

func listRules(w io.Writer, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		r, err := readRules(cmd.Context(), v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, listFormat, "ID", "NAME", "ENABLED", "CONDITIONS", "TARGET")
		for _, rule := range r {
			_, _ = fmt.Fprintf(w, listFormat, strconv.Itoa(rule.ID), rule.Name, strconv.FormatBool(rule.Enabled), rule.Description(), rule.Target().String())
		}
		return nil
	}
}

func exportRules(w io.Writer, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		r, err := readRules(cmd.Context(), v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
}

const evaluateFormat = "%-5s %-24s %s\n"

func evaluateRules(w io.Writer, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		hour, temperature := v.GetInt("evaluate.hour"), v.GetFloat64("evaluate.temp")
		if hour != rules.AnyHour && (hour < 0 || hour > 23) {
			return fmt.Errorf("invalid hour %d: must be between 0 and 23", hour)
		}
		if !(rules.EvaluationContext{Temperature: temperature}).IsValid() {
			return fmt.Errorf("invalid temperature %v", temperature)
		}
		r, err := readRules(cmd.Context(), v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, evaluateFormat, "HOUR", "RULE", "TARGET")
		for ctx := range evaluationInput(hour, temperature) {
			active, ok := rules.SelectActiveRule(ctx, r)
			name, target := "-", "no change (off if on)"
			if ok {
				name, target = active.Name, active.Target().String()
			}
			_, _ = fmt.Fprintf(w, evaluateFormat, fmt.Sprintf("%02d:00", ctx.Hour), name, target)
		}
		return nil
	}
}

func evaluationInput(hour int, temperature float64) iter.Seq[rules.EvaluationContext] {
	return func(yield func(rules.EvaluationContext) bool) {
		if hour != rules.AnyHour {
			yield(rules.EvaluationContext{Hour: hour, Temperature: temperature})
			return
		}
		for h := range 24 {
			if !yield(rules.EvaluationContext{Hour: h, Temperature: temperature}) {
				return
			}
		}
	}
}
