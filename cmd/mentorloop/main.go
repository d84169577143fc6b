package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mentorloop",
	Short: "MentorLoop — mentorship platform application server",
	Long:  "MentorLoop serves the mentorship platform: registration and login, a searchable mentor directory, session scheduling, direct messaging, and a learning resource library. All durable state lives behind the platform data API; this process holds the working copy.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: configs/mentorloop.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
