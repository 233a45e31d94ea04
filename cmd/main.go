package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.exprc.dev/internal/server"
	exprc "go.exprc.dev/pkg"
)

func main() {
	root := &cobra.Command{
		Use:          "exprc",
		Short:        "exprc traces an arithmetic expression through every compiler phase",
		SilenceUsage: true,
	}

	root.AddCommand(newCompileCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <expression>",
		Short: "Compile one expression and print every phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := exprc.NewCompiler().Compile(args[0])
			if err != nil {
				return err
			}

			sections := []struct {
				title string
				body  string
			}{
				{"Tokens", res.Tokens},
				{"Syntax tree", res.SyntaxTree},
				{"Semantic analysis", res.Semantic},
				{"Three-address code", res.Intermediate},
				{"Final code", res.Final},
				{"LLVM IR", res.LLVM},
			}

			for _, s := range sections {
				fmt.Printf("=== %s ===\n%s\n\n", s.title, s.body)
			}

			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compiler over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()

			if configFile != "" {
				if err := server.LoadConfig(configFile, &cfg); err != nil {
					return err
				}
			}

			if addr != "" {
				cfg.Addr = addr
			}

			return server.New(cfg).ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configFile, "config", "", "TOML configuration file")

	return cmd
}
