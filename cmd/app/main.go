package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "burger",
	Short: "Burger constructor service",
	Long: `Serves the burger constructor API: pick ingredients from the catalog,
arrange the fillings and place the burger as an order.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
