package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/maksli/vanvleck/internal/analysis"
	"github.com/maksli/vanvleck/internal/config"
	"github.com/maksli/vanvleck/internal/export"
	"github.com/maksli/vanvleck/internal/render"
	"github.com/maksli/vanvleck/internal/storage"
	"github.com/maksli/vanvleck/internal/tui"
	"github.com/maksli/vanvleck/internal/vanvleck"
)

var (
	dataDir    string
	configFile string
	preset     string
	output     string
	save       bool
	outFile    string
	docTitle   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vanvleck",
		Short: "symbolic Van Vleck expansions for periodically driven systems",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vanvleck", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "problem file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset problem")

	expandCmd := &cobra.Command{
		Use:   "expand [order]",
		Short: "compute generators and effective Hamiltonian up to an order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExpand,
	}
	expandCmd.Flags().StringVar(&output, "output", "", "output format: text or latex")
	expandCmd.Flags().BoolVar(&save, "save", false, "persist the run to the data directory")

	latexCmd := &cobra.Command{
		Use:   "latex [order]",
		Short: "emit a standalone LaTeX document of the expansion",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLatex,
	}
	latexCmd.Flags().StringVar(&outFile, "out", "", "write the document to a file instead of stdout")
	latexCmd.Flags().StringVar(&docTitle, "title", "Van Vleck expansion", "document title")

	growthCmd := &cobra.Command{
		Use:   "growth [maxorder]",
		Short: "plot raw vs simplified term growth per order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGrowth,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [maxorder]",
		Short: "interactively browse the expansion order by order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tORDER\tHAMILTONIAN")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				h, err := cfg.BuildHamiltonian()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, cfg.Order, render.CollectionText(h))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(expandCmd, latexCmd, growthCmd, browseCmd, listCmd, showCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProblem resolves the problem definition: preset beats config file beats
// defaults.
func loadProblem() (*config.Config, string, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, preset, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, configFile, nil
	}
	return config.DefaultConfig(), "default", nil
}

func orderArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid order: %s", args[0])
	}
	return n, nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadProblem()
	if err != nil {
		return err
	}
	order, err := orderArg(args, cfg.Order)
	if err != nil {
		return err
	}
	format := cfg.Output
	if output != "" {
		format = output
	}

	h, err := cfg.BuildHamiltonian()
	if err != nil {
		return err
	}
	exp := vanvleck.New(h)

	fmt.Printf("H = %s\n\n", render.CollectionText(h))

	summaries := make([]storage.OrderSummary, 0, order)
	for n := 1; n <= order; n++ {
		s, err := exp.S(n)
		if err != nil {
			return err
		}
		k, err := exp.K(n)
		if err != nil {
			return err
		}

		if format == "latex" {
			fmt.Printf("S^{(%d)} = %s\n", n, render.CollectionLaTeX(s))
			fmt.Printf("K^{(%d)} = %s\n\n", n, render.CollectionLaTeX(k))
		} else {
			fmt.Printf("S(%d) = %s\n", n, render.CollectionStyled(s))
			fmt.Printf("K(%d) = %s\n\n", n, render.CollectionStyled(k))
		}

		summaries = append(summaries, storage.OrderSummary{
			N:      n,
			KTerms: len(k),
			STerms: len(s),
			K:      render.CollectionText(k),
			S:      render.CollectionText(s),
			KLaTeX: render.CollectionLaTeX(k),
			SLaTeX: render.CollectionLaTeX(s),
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tS TERMS\tK TERMS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%d\t%d\n", s.N, s.STerms, s.KTerms)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(source, order, summaries)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runLatex(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProblem()
	if err != nil {
		return err
	}
	order, err := orderArg(args, cfg.Order)
	if err != nil {
		return err
	}

	h, err := cfg.BuildHamiltonian()
	if err != nil {
		return err
	}
	exp := vanvleck.New(h)

	entries := make([]export.Entry, 0, order)
	for n := 1; n <= order; n++ {
		s, err := exp.S(n)
		if err != nil {
			return err
		}
		k, err := exp.K(n)
		if err != nil {
			return err
		}
		entries = append(entries, export.Entry{
			N: n,
			S: render.CollectionLaTeX(s),
			K: render.CollectionLaTeX(k),
		})
	}

	if outFile != "" {
		if err := export.Write(outFile, docTitle, entries); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	fmt.Print(export.Document(docTitle, entries))
	return nil
}

func runGrowth(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProblem()
	if err != nil {
		return err
	}
	maxOrder, err := orderArg(args, 4)
	if err != nil {
		return err
	}

	h, err := cfg.BuildHamiltonian()
	if err != nil {
		return err
	}
	profile, err := analysis.Growth(vanvleck.New(h), maxOrder)
	if err != nil {
		return err
	}

	simplified := make([]float64, len(profile))
	raw := make([]float64, len(profile))
	for i, row := range profile {
		simplified[i] = float64(row.KTerms)
		raw[i] = float64(row.RawBrackets)
	}

	fmt.Println(asciigraph.Plot(raw,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("raw bracket constructions per order"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(simplified,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("simplified K(n) term count"),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tRAW BRACKETS\tK TERMS\tS TERMS")
	for _, row := range profile {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", row.Order, row.RawBrackets, row.KTerms, row.STerms)
	}
	return w.Flush()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProblem()
	if err != nil {
		return err
	}
	maxOrder, err := orderArg(args, cfg.Order)
	if err != nil {
		return err
	}

	h, err := cfg.BuildHamiltonian()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(h, maxOrder))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tORDER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Order,
		)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %s\n", meta.Source)
	fmt.Printf("order: %d\n\n", meta.Order)

	for _, o := range meta.Orders {
		fmt.Printf("S(%d) = %s\n", o.N, o.S)
		fmt.Printf("K(%d) = %s\n\n", o.N, o.K)
	}
	return nil
}
