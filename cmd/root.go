// Package cmd provides the CLI commands for the Todo application.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SamirAliWebDev/Todo/internal/adapters/notification"
	"github.com/SamirAliWebDev/Todo/internal/adapters/tui"
	"github.com/SamirAliWebDev/Todo/internal/config"
	"github.com/SamirAliWebDev/Todo/internal/domain"
	"github.com/SamirAliWebDev/Todo/internal/stats"
	"github.com/SamirAliWebDev/Todo/internal/store"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	seedDemo bool
	nameFlag string

	// Global dependencies
	appConfig *config.Config
	taskStore *store.Store
	notifier  *notification.Notifier
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Todo - a personal task list with progress tracking",
	Long: `Todo is a terminal task manager: keep a list of tasks with optional
categories and schedules, check them off, and watch your daily progress,
weekly activity and per-category completion.

All state lives in memory for the lifetime of the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&seedDemo, "seed", false, "Preload a few sample tasks")
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "Override the configured display name")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Todo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices sets up the store, notifier and configuration.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	if nameFlag != "" {
		appConfig.UserName = nameFlag
	}

	notifier = notification.New(&appConfig.Notifications)
	taskStore = store.New(nil)

	if seedDemo {
		taskStore.Seed(sampleTasks())
	}

	watchForAllDone(taskStore, notifier)

	return nil
}

// watchForAllDone fires a desktop notification the moment the collection
// first reaches full completion.
func watchForAllDone(st *store.Store, n *notification.Notifier) {
	var wasAllDone bool
	st.Subscribe(func(tasks []domain.Task) {
		p := stats.DailyProgress(tasks)
		allDone := p.Total > 0 && p.Completed == p.Total
		if allDone && !wasAllDone {
			if err := n.NotifyAllDone(p.Completed); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
			}
		}
		wasAllDone = allDone
	})
}

// runApp launches the fullscreen TUI for the bare "todo" command.
func runApp(cmd *cobra.Command, args []string) error {
	onToggleNotifs := func(enabled bool) {
		appConfig.Notifications.Enabled = enabled
		if notifier != nil {
			notifier.SetEnabled(enabled)
		}
		if err := config.Save(appConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
		}
	}

	if err := tui.Run(taskStore, appConfig, nil, onToggleNotifs); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	if err := config.Save(appConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
	}

	return nil
}

// sampleTasks returns the demo collection behind --seed.
func sampleTasks() []domain.Task {
	mk := func(text string, category domain.Category, completed bool) domain.Task {
		task, _ := domain.NewTask(text)
		task.Category = category
		task.Date = domain.DateOf(time.Now())
		if completed {
			task.Complete(task.Date)
		}
		return *task
	}

	return []domain.Task{
		mk("Design the new logo", domain.CategoryWork, false),
		mk("Develop the landing page", domain.CategoryWork, false),
		mk("Go for a 30-min run", domain.CategoryFitness, true),
		mk("Buy groceries", domain.CategoryPersonal, false),
	}
}
