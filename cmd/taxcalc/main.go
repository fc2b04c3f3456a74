package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sololedger/tax-calculator/internal/calculation"
	"github.com/sololedger/tax-calculator/internal/config"
	"github.com/sololedger/tax-calculator/internal/output"
	"github.com/sololedger/tax-calculator/pkg/dateutil"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "UK self-employment tax calculator CLI",
	Long:  "Self Assessment tax, National Insurance and Universal Credit period calculator for the self-employed",
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD: %w", name, raw, err)
	}
	return d, nil
}

var summaryCmd = &cobra.Command{
	Use:   "summary [profile-file]",
	Short: "Compute the tax-year summary for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		taxYear, _ := cmd.Flags().GetString("tax-year")
		if taxYear == "" {
			taxYear = dateutil.TaxYearOf(time.Now().UTC())
		}

		engine := newEngine(cmd)
		summary, err := engine.TaxYearSummary(profile, taxYear)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q, available: %v", formatName, output.FormatterNames())
		}
		data, err := formatter.Format(summary)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [profile-file]",
	Short: "Produce a persistable point-in-time tax calculation with its full ruleset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		taxYear, _ := cmd.Flags().GetString("tax-year")
		if taxYear == "" {
			taxYear = dateutil.TaxYearOf(time.Now().UTC())
		}

		engine := newEngine(cmd)
		snapshot, err := engine.Snapshot(profile, taxYear, time.Now().UTC())
		if err != nil {
			return err
		}
		data, err := output.MarshalSnapshot(snapshot)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var ucPeriodCmd = &cobra.Command{
	Use:   "uc-period [profile-file]",
	Short: "Show the UC assessment period containing a date, with period totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		ref, err := parseDateFlag(cmd, "date")
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		summary, err := engine.AssessmentPeriodSummary(profile, ref)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Assessment period %s to %s\n",
			output.FormatDate(summary.PeriodStart), output.FormatDate(summary.PeriodEnd))
		fmt.Fprintf(os.Stdout, "%-16s %12s\n", "Income", output.FormatMoney(summary.TotalIncome))
		fmt.Fprintf(os.Stdout, "%-16s %12s\n", "Expenses", output.FormatMoney(summary.TotalExpenses))
		fmt.Fprintf(os.Stdout, "%-16s %12s\n", "Net profit", output.FormatMoney(summary.NetProfit))
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a tax set-aside percentage for a projected profit",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawProfit, _ := cmd.Flags().GetString("profit")
		profit, err := decimal.NewFromString(rawProfit)
		if err != nil {
			return fmt.Errorf("invalid --profit %q: %w", rawProfit, err)
		}
		on, err := parseDateFlag(cmd, "date")
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		rec, err := engine.RecommendSetAside(profit, on)
		if err != nil {
			return err
		}
		data, err := output.MarshalRecommendation(rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Show the HMRC Self Assessment registration deadline for a trading start date",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag(cmd, "start")
		if err != nil {
			return err
		}
		deadline := dateutil.RegistrationDeadline(start)
		fmt.Fprintf(os.Stdout, "Trading from %s: register by %s (%d days away)\n",
			output.FormatDate(start), output.FormatDate(deadline),
			dateutil.DaysUntil(time.Now().UTC(), deadline))
		return nil
	},
}

var rulesetsCmd = &cobra.Command{
	Use:   "rulesets",
	Short: "List the tax years with registered rulesets",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine(cmd)
		for _, year := range engine.Rules.AvailableYears() {
			rs, err := engine.Rules.ForYear(year)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s  (%s)  allowance %s, class 2 from %s, class 4 from %s\n",
				rs.TaxYear, rs.Version,
				output.FormatMoney(rs.PersonalAllowance),
				output.FormatMoney(rs.Class2Threshold),
				output.FormatMoney(rs.Class4LowerThreshold))
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [profile-file]",
	Short: "Export a profile's transactions as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		data, err := output.TransactionsCSV(profile)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	summaryCmd.Flags().String("tax-year", "", "Tax year label, e.g. 2024-25 (default: current)")
	summaryCmd.Flags().String("format", "console", "Output format: console, json or csv")
	snapshotCmd.Flags().String("tax-year", "", "Tax year label, e.g. 2024-25 (default: current)")
	ucPeriodCmd.Flags().String("date", "", "Reference date YYYY-MM-DD (default: today)")
	recommendCmd.Flags().String("profit", "0", "Projected annual profit in GBP")
	recommendCmd.Flags().String("date", "", "Date selecting the tax year YYYY-MM-DD (default: today)")
	deadlineCmd.Flags().String("start", "", "Trading start date YYYY-MM-DD (default: today)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(ucPeriodCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(deadlineCmd)
	rootCmd.AddCommand(rulesetsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
