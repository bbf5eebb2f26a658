package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"chestdef/internal/bootstrap"
	sessioninadapter "chestdef/internal/modules/session/adapter/in"
	sessiondto "chestdef/internal/modules/session/dto"
	"chestdef/internal/platform/clock"
	"chestdef/internal/platform/config"
	"chestdef/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: viper.New()}

	root := &cobra.Command{
		Use:           "chestdef",
		Short:         "Guided chest-definition workout player",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindConfigFlags(flags.v, root.PersistentFlags())

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newWorkoutCmd(flags))
	root.AddCommand(newExerciseCmd(flags))
	root.AddCommand(newGuideCmd(flags))
	root.AddCommand(newSimulateCmd(flags))
	root.AddCommand(newTDEECmd(flags))
	root.AddCommand(newFavoriteCmd(flags))
	root.AddCommand(newNoteCmd(flags))
	root.AddCommand(newPlanCmd(flags))
	root.AddCommand(newDataCmd(flags))
	root.AddCommand(newVideoCmd(flags))
	return root
}

// bindConfigFlags registers the config flags and binds them to their viper
// keys. Unset flags fall through to config.yaml, env and defaults.
func bindConfigFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.String("data-dir", "", "directory for user data, config.yaml and debug.log")
	fs.String("locale", "", "content language: pt|en")
	fs.String("store", "", "user data backend: sqlite|file")
	fs.String("log-level", "", "DEBUG|INFO|WARN|ERROR")
	for key, name := range map[string]string{"data_dir": "data-dir", "locale": "locale", "store": "store", "log_level": "log-level"} {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

// loadApp resolves config and wires the application. The returned func
// releases the store and the log file.
func loadApp(flags *rootFlags) (*bootstrap.App, func(), error) {
	cfg, err := config.Load(flags.v)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewLogger(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, logger, bootstrap.Options{})
	if err != nil {
		logger.Close()
		return nil, nil, err
	}
	return app, func() {
		if err := app.Close(); err != nil {
			logger.Error("close app", "error", err.Error())
		}
		logger.Close()
	}, nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the chestdef terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			return bootstrap.RunTUI(app)
		},
	}
}

func newWorkoutCmd(flags *rootFlags) *cobra.Command {
	workout := &cobra.Command{Use: "workout", Short: "Workout catalog commands"}

	workout.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List workouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			workouts, err := app.CatalogCLI.ListWorkouts(context.Background(), app.Config.Locale)
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workouts")
				return nil
			}
			for _, w := range workouts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tsets=%d\tslots=%d\tfrequency=%s\n", w.ID, w.Title, w.Sets, len(w.ExerciseIDs), w.Frequency)
			}
			return nil
		},
	})

	workout.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a workout's exercise slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			resolved, err := app.CatalogCLI.ShowWorkout(context.Background(), args[0], app.Config.Locale)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) sets=%d\n", resolved.Workout.Title, resolved.Workout.ID, resolved.Workout.Sets)
			for i, ex := range resolved.Exercises {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s\t%s\n", i+1, ex.Icon, ex.Name, ex.ID)
			}
			return nil
		},
	})
	return workout
}

func newExerciseCmd(flags *rootFlags) *cobra.Command {
	exercise := &cobra.Command{Use: "exercise", Short: "Exercise catalog commands"}
	exercise.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			ctx := context.Background()
			ex, err := app.CatalogCLI.ShowExercise(ctx, args[0], app.Config.Locale)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id: %s\nname: %s %s\ncategory: %s\n", ex.ID, ex.Icon, ex.Name, ex.Category)
			_, _ = fmt.Fprintf(out, "description: %s\nobjective: %s\nquick fix: %s\nvideo: %s\n", ex.ShortDescription, ex.Objective, ex.QuickFix, ex.VideoURL)
			for i, step := range ex.Steps {
				_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, step)
			}
			data := app.UserDataCLI.Show(ctx)
			for _, fav := range data.Favorites {
				if fav == ex.ID {
					_, _ = fmt.Fprintln(out, "favorite: yes")
				}
			}
			if note := data.Notes[ex.ID]; note != "" {
				_, _ = fmt.Fprintf(out, "note: %s\n", note)
			}
			return nil
		},
	})
	return exercise
}

func newGuideCmd(flags *rootFlags) *cobra.Command {
	var width int
	var raw bool
	guide := &cobra.Command{Use: "guide", Short: "Render instructional pages"}
	guide.PersistentFlags().IntVar(&width, "width", 80, "wrap width")
	guide.PersistentFlags().BoolVar(&raw, "raw", false, "print Markdown instead of rendered text")

	page := func(use, short string, args cobra.PositionalArgs, load func(app *bootstrap.App, args []string) (string, string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				app, done, err := loadApp(flags)
				if err != nil {
					return err
				}
				defer done()
				md, rendered, err := load(app, args)
				if err != nil {
					return err
				}
				if raw {
					rendered = md
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			},
		}
	}

	guide.AddCommand(page("legal", "Show the mandatory notice", cobra.NoArgs, func(app *bootstrap.App, _ []string) (string, string, error) {
		p, err := app.GuideCLI.Legal(context.Background(), app.Config.Locale, width)
		return p.Markdown, p.Rendered, err
	}))
	guide.AddCommand(page("food", "Show the food guide", cobra.NoArgs, func(app *bootstrap.App, _ []string) (string, string, error) {
		p, err := app.GuideCLI.Food(context.Background(), app.Config.Locale, width)
		return p.Markdown, p.Rendered, err
	}))
	guide.AddCommand(page("exercise <id>", "Show an exercise guide", cobra.ExactArgs(1), func(app *bootstrap.App, args []string) (string, string, error) {
		p, err := app.GuideCLI.Exercise(context.Background(), args[0], app.Config.Locale, width)
		return p.Markdown, p.Rendered, err
	}))
	return guide
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var script, scriptFile string
	var acceptLegal bool
	cmd := &cobra.Command{
		Use:   "simulate <workout-id>",
		Short: "Replay timer gestures against a workout on a simulated clock",
		Long: `Replay a script of steps separated by ";" or newlines:
  expand N | collapse | ack N | complete
  tap | double | down | up | hold <dur> | wait <dur>
  start | pause | toggle | phase | reset`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scriptFile != "" {
				payload, err := os.ReadFile(scriptFile)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				script = string(payload)
			}
			if strings.TrimSpace(script) == "" {
				return fmt.Errorf("--script or --script-file is required")
			}
			steps, err := sessioninadapter.ParseScript(script)
			if err != nil {
				return err
			}
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()

			clk := clock.NewManual(time.Now().UTC())
			trace, runErr := app.Simulator(clk).Run(context.Background(), sessiondto.OpenInput{
				WorkoutID:     args[0],
				Locale:        app.Config.Locale,
				LegalAccepted: acceptLegal,
			}, steps)
			out := cmd.OutOrStdout()
			for _, line := range trace {
				expanded := "-"
				if line.Expanded >= 0 {
					expanded = fmt.Sprint(line.Expanded + 1)
				}
				finished := make([]string, 0, len(line.Finished))
				for _, pos := range line.Finished {
					finished = append(finished, fmt.Sprint(pos+1))
				}
				_, _ = fmt.Fprintf(out, "%-14s expanded=%s clock=%s phase=%s running=%t goal=%t finished=[%s]\n",
					line.Step, expanded, orDash(line.Clock), orDash(line.Phase), line.Running, line.GoalReached, strings.Join(finished, ","))
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "inline script")
	cmd.Flags().StringVar(&scriptFile, "script-file", "", "file holding the script")
	cmd.Flags().BoolVar(&acceptLegal, "accept-legal", false, "accept the mandatory notice")
	return cmd
}

func newTDEECmd(flags *rootFlags) *cobra.Command {
	var sex string
	var age, weight, height, activity float64
	cmd := &cobra.Command{
		Use:   "tdee",
		Short: "Estimate daily energy needs and cutting macros",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.NutritionCLI.Calculate(sex, age, weight, height, activity)
			if err != nil {
				return err
			}
			t := func(key string) string { return app.CatalogCLI.T(key, app.Config.Locale) }
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "bmr: %.2f\n%s: %d\n%s: %d\n", out.BMR, t("maintenanceResult"), out.TDEE, t("cuttingResult"), out.Cutting)
			_, _ = fmt.Fprintf(w, "%s: %.0fg  %s: %dg  %s: %dg\n", t("proteinLabel"), out.ProteinG, t("fatLabel"), out.FatG, t("carbLabel"), out.CarbsG)
			_, _ = fmt.Fprintln(w, t("comparisonTitle"))
			for _, lvl := range out.Levels {
				_, _ = fmt.Fprintf(w, "  x%.3g\t%d\t%s\n", lvl.Multiplier, lvl.TDEE, t(lvl.Key))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "male", "male|female")
	cmd.Flags().Float64Var(&age, "age", 25, "age in years")
	cmd.Flags().Float64Var(&weight, "weight", 75, "weight in kg")
	cmd.Flags().Float64Var(&height, "height", 175, "height in cm")
	cmd.Flags().Float64Var(&activity, "activity", 1.2, "activity multiplier: 1.2|1.375|1.55|1.725|1.9")
	return cmd
}

func newFavoriteCmd(flags *rootFlags) *cobra.Command {
	favorite := &cobra.Command{Use: "favorite", Short: "Favorite exercises"}
	favorite.AddCommand(&cobra.Command{
		Use:   "toggle <exercise-id>",
		Short: "Toggle an exercise's favorite mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			on, err := app.UserDataCLI.ToggleFavorite(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s favorite=%t\n", args[0], on)
			return nil
		},
	})
	return favorite
}

func newNoteCmd(flags *rootFlags) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Exercise notes"}
	note.AddCommand(&cobra.Command{
		Use:   "set <exercise-id> [text...]",
		Short: "Set an exercise note; empty text clears it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			text := strings.Join(args[1:], " ")
			if err := app.UserDataCLI.SetNote(context.Background(), args[0], text); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note cleared: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note saved: %s\n", args[0])
			return nil
		},
	})
	return note
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Custom workout plans"}

	var name string
	var exercises []string
	save := &cobra.Command{
		Use:   "save --name <name> --exercises <id,...>",
		Short: "Save a custom plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.UserDataCLI.SavePlan(context.Background(), name, exercises)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan saved: %s (%s) exercises=%d\n", out.Name, out.ID, len(out.Exercises))
			return nil
		},
	}
	save.Flags().StringVar(&name, "name", "", "plan name")
	save.Flags().StringSliceVar(&exercises, "exercises", nil, "exercise ids in order")
	plan.AddCommand(save)

	plan.AddCommand(&cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a custom plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			if err := app.UserDataCLI.DeletePlan(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan deleted: %s\n", args[0])
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List custom plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			plans := app.UserDataCLI.Plans(context.Background())
			if len(plans) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plans")
				return nil
			}
			for _, p := range plans {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.CreatedAt.Format(time.RFC3339), strings.Join(p.Exercises, ","))
			}
			return nil
		},
	})
	return plan
}

func newDataCmd(flags *rootFlags) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Persisted user data"}
	data.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted record as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			payload, err := json.MarshalIndent(app.UserDataCLI.Show(context.Background()), "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	})
	return data
}

func newVideoCmd(flags *rootFlags) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "video <exercise-id>",
		Short: "Open an exercise's demo video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, done, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer done()
			ctx := context.Background()
			ex, err := app.CatalogCLI.ShowExercise(ctx, args[0], app.Config.Locale)
			if err != nil {
				return err
			}
			src := app.MediaCLI.Classify(ex.VideoURL)
			if !printOnly {
				if src, err = app.MediaCLI.Open(ctx, ex.VideoURL); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "provider=%s id=%s\nembed=%s\n", src.Provider, orDash(src.ID), orDash(src.EmbedURL))
			if src.StreamURL != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stream=%s\n", src.StreamURL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the embed URL without opening it")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
