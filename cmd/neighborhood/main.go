package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/neighborhood/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "neighborhood",
		Short:        "Procedural 3x3 block neighborhood generator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(sceneCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

func generateCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a layout and print it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, projectArg(args), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func sceneCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "scene [project-path]",
		Short: "Generate a layout and print its 3D scene graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd, projectArg(args), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func planCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "plan [project-path]",
		Short: "Generate a layout and print its top-down 2D plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, projectArg(args), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func validateCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a config and check the generated layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, projectArg(args), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func costCmd() *cobra.Command {
	var flags configFlags
	cmd := &cobra.Command{
		Use:   "cost [project-path]",
		Short: "Compute and display the render budget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCost(cmd, projectArg(args), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		flags configFlags
		port  int
	)

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live scene updates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(projectArg(args), port,
				server.WithLogger(slog.Default()),
				server.WithOverride(flags.overrides(cmd)),
			)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	flags.register(cmd)
	return cmd
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
