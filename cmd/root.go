package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collage-maker",
	Short: "A CLI tool for arranging photos into printable collage pages",
	Long: `Collage Maker arranges a folder of photographs into fixed-size
printable grid pages. Each photo is rotated to match the page orientation,
scaled to its grid cell, framed and stamped with its capture date. Pages
are written as PNG files sized for large-format printing.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
